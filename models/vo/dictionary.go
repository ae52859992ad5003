package vo

import (
	"time"

	"github.com/Xushengqwer/house_service/models/entities"
)

type DistrictVO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	SortOrder   time.Time `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DeveloperVO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Link      *string   `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PhoneVO struct {
	ID        uint64    `json:"id"`
	Phone     string    `json:"phone"`
	Label     string    `json:"label"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MessengerVO struct {
	ID        uint64    `json:"id"`
	Link      string    `json:"link"`
	Label     string    `json:"label"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RegionVO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewDistrictVO(d *entities.District) *DistrictVO {
	return &DistrictVO{ID: d.ID, Title: d.Title, Description: d.Description, SortOrder: d.SortOrder, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

func NewDeveloperVO(d *entities.Developer) *DeveloperVO {
	return &DeveloperVO{ID: d.ID, Title: d.Title, Link: d.Link, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

func NewPhoneVO(p *entities.Phone) *PhoneVO {
	return &PhoneVO{ID: p.ID, Phone: p.Phone, Label: p.Label, IsDefault: p.IsDefault, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

func NewMessengerVO(m *entities.Messenger) *MessengerVO {
	return &MessengerVO{ID: m.ID, Link: m.Link, Label: m.Label, IsDefault: m.IsDefault, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func NewRegionVO(r *entities.Region) *RegionVO {
	return &RegionVO{ID: r.ID, Title: r.Title, Description: r.Description, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}
