package viewmodels

type TreeNode struct {
	Type  string    `json:"type"`
	Name  string    `json:"name,omitempty"`
	Count int       `json:"count,omitempty"`
	File  *Document `json:"file,omitempty"`
}

type Document struct {
	ID            string `json:"id"`
	ClientID      string `json:"client_id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Subcategory   string `json:"subcategory"`
	ReferenceDate string `json:"reference_date"`
	FileKey       string `json:"file_key"`
	FileSize      int64  `json:"file_size"`
	CreatedAt     string `json:"created_at"`
}
