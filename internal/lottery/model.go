package lottery

type Assignment struct {
	SchoolID   string `json:"school_id"`
	SchoolName string `json:"school_name,omitempty"`
	SerialNo   int    `json:"serial_no"`
}

type DrawInput struct {
	Tier string `json:"tier" binding:"required"`
}

type CommitInput struct {
	Tier  string       `json:"tier" binding:"required"`
	Order []Assignment `json:"order"`
}
