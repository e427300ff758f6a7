package model

type PitchSetResult struct {
	Name   string   `json:"name"`
	Tonic  string   `json:"tonic"`
	Notes  []string `json:"notes"`
	Values []int    `json:"values"`
	Third  string   `json:"third"`
}

type ScaleRequestBody struct {
	Tonic     string `json:"tonic"`
	ScaleType string `json:"scale_type"`
	Mode      string `json:"mode"`
}

type ChordsRequestBody struct {
	Tonic     string   `json:"tonic"`
	ScaleType string   `json:"scale_type"`
	Mode      string   `json:"mode"`
	Degrees   []string `json:"degrees"`
	Size      int      `json:"size"`
}

type ChordsResponse struct {
	Chords []PitchSetResult `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
