package domain

import "github.com/shopspring/decimal"

func priceString(d *decimal.Decimal) string {
	if d == nil {
		return DefaultPrice
	}
	return d.StringFixed(2)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// NormalizeProduct maps a stored product onto the normalized item view.
func NormalizeProduct(p Product) Item {
	return Item{
		ID:            p.ID,
		Name:          p.Name,
		ItemCode:      orDefault(p.ItemCode, DefaultCode),
		SalesPrice:    priceString(p.SalesPrice),
		PurchasePrice: priceString(p.PurchasePrice),
		CurrentStock:  p.CurrentStock.String(),
		Type:          TypeProduct,
		Description:   orDefault(p.Description, DefaultDescription),
		HSNCode:       orDefault(p.HSNCode, DefaultCode),
		GSTTaxID:      p.GSTTaxID,
		MeasuringUnit: orDefault(p.MeasuringUnit, DefaultMeasuringUnit),
	}
}

// NormalizeService maps a stored service onto the normalized item view.
// Services carry no stock; CurrentStock reads "N/A".
func NormalizeService(s ServiceItem) Item {
	return Item{
		ID:            s.ID,
		Name:          s.Name,
		ItemCode:      orDefault(s.ItemCode, DefaultCode),
		SalesPrice:    priceString(s.SalesPrice),
		PurchasePrice: DefaultPrice,
		CurrentStock:  ServiceStockDisplay,
		Type:          TypeService,
		Description:   orDefault(s.Description, DefaultDescription),
		SACCode:       orDefault(s.SACCode, DefaultCode),
		GSTTaxID:      s.GSTTaxID,
		MeasuringUnit: orDefault(s.MeasuringUnit, DefaultMeasuringUnit),
	}
}
