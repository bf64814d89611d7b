package books

type CreateBookDTO struct {
	Title string `json:"title" validate:"required"`
}

type AddCommentDTO struct {
	Comment string `json:"comment" validate:"required"`
}

// Plain-text success bodies.
const (
	msgDeleted    = "delete successful"
	msgDeletedAll = "complete delete successful"
)
