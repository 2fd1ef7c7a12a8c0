package watson

// classifyResponse mirrors the v3 /classify response body.
type classifyResponse struct {
	Images          []classifiedImage `json:"images"`
	ImagesProcessed int               `json:"images_processed"`
	CustomClasses   int               `json:"custom_classes"`
	Warnings        []warning         `json:"warnings,omitempty"`
	Error           *errorInfo        `json:"error,omitempty"`
}

type classifiedImage struct {
	Image       string       `json:"image,omitempty"`
	SourceURL   string       `json:"source_url,omitempty"`
	Classifiers []classifier `json:"classifiers"`
	Error       *errorInfo   `json:"error,omitempty"`
}

type classifier struct {
	ClassifierID string       `json:"classifier_id"`
	Name         string       `json:"name"`
	Classes      []classEntry `json:"classes"`
}

type classEntry struct {
	Class         string  `json:"class"`
	Score         float64 `json:"score"`
	TypeHierarchy string  `json:"type_hierarchy,omitempty"`
}

type warning struct {
	WarningID   string `json:"warning_id"`
	Description string `json:"description"`
}

type errorInfo struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	ErrorID     string `json:"error_id"`
}

// parameters is the JSON options object sent alongside the image.
type parameters struct {
	Threshold float64 `json:"threshold"`
}
