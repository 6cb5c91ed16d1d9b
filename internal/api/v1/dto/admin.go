package dto

// PricingUpdateDTO is the inline pricing edit; every field is free text.
type PricingUpdateDTO struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// UploadDTO describes a stored image. URL is a signed preview for private
// buckets and the public URL otherwise.
type UploadDTO struct {
	Bucket     string `json:"bucket"`
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}

// ErrorDTO is every error body.
type ErrorDTO struct {
	Error string `json:"error"`
}

type KeepaliveDTO struct {
	OK    bool   `json:"ok"`
	TS    string `json:"ts,omitempty"`
	Error string `json:"error,omitempty"`
}
