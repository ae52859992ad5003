package entities

// HousePhone 房源与电话的关联行。
// (house_id, phone_id) 唯一，批量插入时遇到重复直接忽略。
type HousePhone struct {
	BaseModel
	HouseID uint64 `gorm:"not null;uniqueIndex:idx_house_phone"`
	PhoneID uint64 `gorm:"not null;uniqueIndex:idx_house_phone;index"`

	Phone *Phone `gorm:"foreignKey:PhoneID;constraint:OnDelete:CASCADE"`
}

// HouseMessenger 房源与即时通讯账号的关联行
type HouseMessenger struct {
	BaseModel
	HouseID     uint64 `gorm:"not null;uniqueIndex:idx_house_messenger"`
	MessengerID uint64 `gorm:"not null;uniqueIndex:idx_house_messenger;index"`

	Messenger *Messenger `gorm:"foreignKey:MessengerID;constraint:OnDelete:CASCADE"`
}
