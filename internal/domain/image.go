package domain

// ImageAttachment links a stored blob to a parent resource with a display
// order. Key is immutable once created; Order is zero-based and unique among
// siblings, re-normalized to 0..n-1 after a deletion.
type ImageAttachment struct {
	URL     string `json:"url"`
	Key     string `json:"key"`
	Caption string `json:"caption,omitempty"`
	AltText string `json:"altText,omitempty"`
	Order   int    `json:"order"`
}
