package queries

type DepthQuery struct {
	Limit int `query:"limit"`
}

type TradeFilters struct {
	Limit int `query:"limit"`
}

type KLineQuery struct {
	Interval string `query:"interval"`
	Limit    int    `query:"limit"`
}

type PositionsQuery struct {
	Account string `query:"account" validate:"required"`
}

type SessionQuery struct {
	Name string `query:"name"`
}

type SessionPayload struct {
	Name           string `json:"name"`
	SelectedMarket string `json:"selected_market" validate:"required"`
}
