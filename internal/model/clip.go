package model

// Clip identifies one indexed audio file and its duration metadata.
type Clip struct {
	Folder   string  `json:"folder"`   // folder key from the sampling plan
	Path     string  `json:"full_path"` // absolute path on disk
	RelPath  string  `json:"rel_path"`  // path relative to the audio root
	Duration float64 `json:"duration_sec"`
	Bucket   string  `json:"bucket"` // assigned duration bucket, "" if unknown
}
