// Package market serves crop prices per (state, crop), preferring the
// market_prices table and falling back to a static table.
package market

import "krishi/entities"

// PriceRow is the wire shape of one market quote.
type PriceRow struct {
	Market     string  `json:"market" yaml:"market"`
	Variety    string  `json:"variety" yaml:"variety"`
	MinPrice   float64 `json:"min_price" yaml:"min_price"`
	MaxPrice   float64 `json:"max_price" yaml:"max_price"`
	ModalPrice float64 `json:"modal_price" yaml:"modal_price"`
}

// Source says which side answered a lookup.
type Source int

const (
	// SourceStore means the table answered, possibly with zero rows that were
	// then filled in from the fallback table.
	SourceStore Source = iota
	// SourceMock means the table errored and the fallback table was used.
	SourceMock
)

func FromEntity(m entities.MarketPrice) PriceRow {
	return PriceRow{
		Market:     m.Market,
		Variety:    m.Variety,
		MinPrice:   m.MinPrice,
		MaxPrice:   m.MaxPrice,
		ModalPrice: m.ModalPrice,
	}
}

func (r PriceRow) Entity(state, crop string) entities.MarketPrice {
	return entities.MarketPrice{
		State:      state,
		CropName:   crop,
		Market:     r.Market,
		Variety:    r.Variety,
		MinPrice:   r.MinPrice,
		MaxPrice:   r.MaxPrice,
		ModalPrice: r.ModalPrice,
	}
}
