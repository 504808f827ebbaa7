package exclusion

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило не найдено
	ErrRuleNotFound = errors.New("exclusion.repository: rule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("exclusion.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("exclusion.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("exclusion.repository: failed to scan row")
)
