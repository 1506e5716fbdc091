package dto

import (
	"mime/multipart"

	"reservo/internal/domains/catalog/model"
	"reservo/shared"
	"reservo/shared/clocktime"
	gDto "reservo/shared/dto"
	gModel "reservo/shared/model"
	"reservo/shared/timezone"

	"github.com/google/uuid"
)

type CreateResourceRequest struct {
	Kind      string                `json:"kind"       validate:"required,oneof=class_session rental_slot"`
	Name      string                `json:"name"       validate:"required,max=100"`
	Weekday   int                   `json:"weekday"    validate:"min=0,max=6"`
	StartTime string                `json:"start_time" validate:"required"`
	EndTime   string                `json:"end_time"   validate:"required"`
	UnitPrice float64               `json:"unit_price" validate:"required,gt=0"`
	Capacity  int                   `json:"capacity"   validate:"required,gt=0"`
	Image     *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
	Active    *bool                 `json:"active"     validate:"omitempty"`
}

func (c *CreateResourceRequest) ToModel(user, imageURL string) (model.Resource, error) {
	start, err := clocktime.Parse(c.StartTime)
	if err != nil {
		return model.Resource{}, err
	}

	end, err := clocktime.Parse(c.EndTime)
	if err != nil {
		return model.Resource{}, err
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Resource{
		ID:           uuid.NewString(),
		Kind:         c.Kind,
		Name:         c.Name,
		Image:        imageURL,
		Weekday:      c.Weekday,
		StartMinutes: start,
		EndMinutes:   end,
		UnitPrice:    c.UnitPrice,
		Capacity:     c.Capacity,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateResourceRequest struct {
	Name      string                `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Weekday   *int                  `db:"weekday"    json:"weekday"    validate:"omitempty,min=0,max=6"`
	UnitPrice *float64              `db:"unit_price" json:"unit_price" validate:"omitempty,gt=0"`
	Capacity  *int                  `db:"capacity"   json:"capacity"   validate:"omitempty,gt=0"`
	Image     *multipart.FileHeader `json:"image"    validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
	Active    *bool                 `db:"active"     json:"active"     validate:"omitempty"`
}

type ResourceResponse struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Weekday      int     `json:"weekday"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	UnitPrice    float64 `json:"unit_price"`
	Capacity     int     `json:"capacity"`
	Active       bool    `json:"active"`
	gDto.Metadata
}

func (r *ResourceResponse) FromModel(model model.Resource) {
	r.ID = model.ID
	r.Kind = model.Kind
	r.Name = model.Name
	r.Image = model.Image
	r.Weekday = model.Weekday
	r.StartTime = clocktime.Format(model.StartMinutes)
	r.EndTime = clocktime.Format(model.EndMinutes)
	r.UnitPrice = model.UnitPrice
	r.Capacity = model.Capacity
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetResourcesResponse) FromModels(models []model.Resource, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Resources = make([]ResourceResponse, len(models))
	for i, mod := range models {
		r.Resources[i].FromModel(mod)
	}
}
