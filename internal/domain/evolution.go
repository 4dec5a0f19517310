package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// DataSource seleciona quais origens participam da montagem da evolução.
// Valores combinados (ex: META_KOMMO) seguem a convenção de conter o nome
// das origens; o Kommo participa quando o valor contém KOMMO ou HYBRID.
type DataSource string

const (
	DataSourceMeta   DataSource = "META"
	DataSourceGoogle DataSource = "GOOGLE"
	DataSourceKommo  DataSource = "KOMMO"
	DataSourceHybrid DataSource = "HYBRID"
)

// IncludesKommo indica se os dados do CRM participam da requisição
func (d DataSource) IncludesKommo() bool {
	s := string(d)
	return strings.Contains(s, string(DataSourceKommo)) || strings.Contains(s, string(DataSourceHybrid))
}

// DayWindow representa um dia do intervalo solicitado: a data âncora, o rótulo
// de exibição (dd/MM) e a chave ISO (YYYY-MM-DD) usada para alinhar as origens.
type DayWindow struct {
	Date  time.Time
	Label string
	ISO   string
}

// StartOfDay retorna o primeiro instante do dia
func (d DayWindow) StartOfDay() time.Time {
	return time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 0, 0, 0, 0, d.Date.Location())
}

// EndOfDay retorna o último instante do dia
func (d DayWindow) EndOfDay() time.Time {
	return time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), d.Date.Location())
}

// StageValue é o valor de um estágio do funil no dia, na ordem do JourneyMap
type StageValue struct {
	Name  string
	Count int
}

// EvolutionPoint é um registro da série temporal de evolução: um por dia,
// com gasto, receita, ROAS e um campo dinâmico por estágio do JourneyMap.
type EvolutionPoint struct {
	Date    string
	Revenue float64
	Spend   float64
	ROAS    float64
	Stages  []StageValue
}

// MarshalJSON serializa o ponto com os estágios como chaves dinâmicas no
// nível raiz, preservando a ordem do JourneyMap.
func (p EvolutionPoint) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(name string, value any) error {
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		val, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}

	if err := writeField("date", p.Date); err != nil {
		return nil, err
	}
	if err := writeField("revenue", p.Revenue); err != nil {
		return nil, err
	}
	if err := writeField("spend", p.Spend); err != nil {
		return nil, err
	}
	if err := writeField("roas", p.ROAS); err != nil {
		return nil, err
	}

	for _, stage := range p.Stages {
		if err := writeField(stage.Name, stage.Count); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EvolutionResponse é a resposta completa da evolução: a série diária e o
// JourneyMap efetivo, para que o chamador monte os cabeçalhos dinâmicos.
type EvolutionResponse struct {
	JourneyMap JourneyMap       `json:"journeyMap"`
	Data       []EvolutionPoint `json:"data"`
}
