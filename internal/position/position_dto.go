package position

type CreatePositionRequest struct {
	Name              string  `json:"name" binding:"required,min=3,max=50"`
	Description       *string `json:"description" binding:"omitempty,max=255"`
	HierarchicalLevel int     `json:"hierarchical_level" binding:"omitempty,gte=0"`
}

type UpdatePositionRequest struct {
	Name              *string `json:"name" binding:"omitempty,min=3,max=50"`
	Description       *string `json:"description" binding:"omitempty,max=255"`
	HierarchicalLevel *int    `json:"hierarchical_level" binding:"omitempty,gte=0"`
}

func (r UpdatePositionRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.HierarchicalLevel == nil
}

type PositionResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	HierarchicalLevel int     `json:"hierarchical_level"`
}
