package metadomain

import "strconv"

// Action é um evento nomeado da lista heterogênea de ações do insight.
// O valor vem como string na API.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Count converte o valor textual da ação em inteiro, tolerando formato inválido
func (a Action) Count() int {
	n, err := strconv.Atoi(a.Value)
	if err != nil {
		f, ferr := strconv.ParseFloat(a.Value, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}

// Amount converte o valor textual da ação em float, tolerando formato inválido
func (a Action) Amount() float64 {
	return atofSafe(a.Value)
}

// InsightRow é uma linha de insights diários por anúncio da Graph API.
// Campos numéricos chegam como string.
type InsightRow struct {
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	Frequency    string   `json:"frequency"`
	Reach        string   `json:"reach"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

func (r *InsightRow) ImpressionsInt() int { return atoiSafe(r.Impressions) }

func (r *InsightRow) ClicksInt() int { return atoiSafe(r.Clicks) }

func (r *InsightRow) ReachInt() int { return atoiSafe(r.Reach) }

func (r *InsightRow) SpendFloat() float64 { return atofSafe(r.Spend) }

func (r *InsightRow) FrequencyFloat() float64 { return atofSafe(r.Frequency) }

func atoiSafe(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func atofSafe(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
