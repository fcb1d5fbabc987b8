package entities

type MarketPrice struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	State      string  `gorm:"index:idx_state_crop;size:32" json:"-"`
	CropName   string  `gorm:"index:idx_state_crop;size:64" json:"-"`
	Market     string  `json:"market"`
	Variety    string  `json:"variety"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	ModalPrice float64 `json:"modal_price"`
}
