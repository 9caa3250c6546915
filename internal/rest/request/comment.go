package request

// Comment is the payload of PATCH /articles/{id}/comment
type Comment struct {
	Comments string `json:"comments" xml:"comments" binding:"required,notblank"`
}
