package statusreset

// Default reset targets
const (
	DefaultTableName       = "TransactionsTable"
	DefaultKeyAttribute    = "TransactionID"
	DefaultTargetAttribute = "TransactionStatus"
	DefaultValue           = 0
)

// ResetConfig names the table, its primary key and the attribute to overwrite
type ResetConfig struct {
	TableName       string
	KeyAttribute    string
	TargetAttribute string

	// Value is written to TargetAttribute on every scanned item.
	Value interface{}
}

// DefaultResetConfig resets TransactionStatus to 0 on TransactionsTable
var DefaultResetConfig = ResetConfig{
	TableName:       DefaultTableName,
	KeyAttribute:    DefaultKeyAttribute,
	TargetAttribute: DefaultTargetAttribute,
	Value:           DefaultValue,
}

// Validate checks that every field is set
func (c ResetConfig) Validate() error {
	switch {
	case c.TableName == "":
		return NewResetError(ErrCodeValidation, "table name is required")
	case c.KeyAttribute == "":
		return NewResetError(ErrCodeValidation, "key attribute is required")
	case c.TargetAttribute == "":
		return NewResetError(ErrCodeValidation, "target attribute is required")
	case c.TargetAttribute == c.KeyAttribute:
		return NewResetError(ErrCodeValidation, "target attribute must differ from key attribute")
	case c.Value == nil:
		return NewResetError(ErrCodeValidation, "replacement value is required")
	}
	return nil
}
