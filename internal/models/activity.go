package models

// ActivityRecord is one monitor observation: who did what, when and where.
// The parquet tags drive the schema of the parquet output sink.
type ActivityRecord struct {
	Timestamp int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	Category  string `json:"category" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	Action    string `json:"action" parquet:"name=action,type=BYTE_ARRAY,convertedtype=UTF8"`
	ID        string `json:"id" parquet:"name=id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Row       int64  `json:"row" parquet:"name=row,type=INT64"`
	Col       int64  `json:"col" parquet:"name=col,type=INT64"`
}

// Location returns the record's location as a grid coordinate.
func (r ActivityRecord) Location() Location {
	return Location{Row: int(r.Row), Col: int(r.Col)}
}
