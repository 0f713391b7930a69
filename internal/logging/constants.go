package logging

// Standardized field names for structured logging.
const (
	FieldRecordID   = "record_id"
	FieldCategory   = "category"
	FieldField      = "field"
	FieldValue      = "value"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldKey        = "key"
	FieldBackend    = "backend"
	FieldPath       = "path"
	FieldOutputFile = "output_file"
	FieldIndex      = "index"
)
