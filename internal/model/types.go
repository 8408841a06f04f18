package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// WeightSet is a named weight vector kept in the flat weight-file format.
type WeightSet struct {
	VersionedRecord
	Name  string `json:"name"`
	Count int    `json:"count"`
	Line  string `json:"line"`
}
