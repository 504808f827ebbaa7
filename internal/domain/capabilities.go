package domain

// Capabilities describes what the acting user is allowed to do in the
// admission chain. Resolved once per request from the actor's identity;
// the rule chain never consults a role flag directly.
type Capabilities struct {
	// CanAssignArbitraryClient allows booking on behalf of another user
	CanAssignArbitraryClient bool
	// BypassDateAndQuotaChecks skips the future-date and weekly-quota
	// rules; exclusion and conflict rules always apply
	BypassDateAndQuotaChecks bool
}

// CapabilitiesFor maps the privilege flag of an identity to capabilities
func CapabilitiesFor(superuser bool) Capabilities {
	return Capabilities{
		CanAssignArbitraryClient: superuser,
		BypassDateAndQuotaChecks: superuser,
	}
}
