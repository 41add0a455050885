// internal/types/types.go
package types

// EntityID — идентификатор сущности. Выдаётся монотонно, поэтому сортировка
// по ID совпадает с порядком создания.
type EntityID uint64
