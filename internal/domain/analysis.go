package domain

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type AnalysisType string

const (
	AnalysisClassification AnalysisType = "classification"
	AnalysisPatterns       AnalysisType = "patterns"
	AnalysisBrief          AnalysisType = "brief"
	AnalysisInsights       AnalysisType = "insights"
	AnalysisSuggestions    AnalysisType = "suggestions"
)

// ClassificationCacheTTL é a validade do retrato gravado após cada classificação
const ClassificationCacheTTL = 6 * time.Hour

// AnalysisPayload é a união das variantes guardadas no cache de análises
type AnalysisPayload interface {
	AnalysisType() AnalysisType
}

// CachedAnalysis é uma linha do cache, única por (brand_id, analysis_type)
type CachedAnalysis struct {
	BrandID   string
	Payload   AnalysisPayload
	CreatedAt time.Time
	ExpiresAt time.Time
}

type ClassificationSnapshot struct {
	Window      DateWindow         `json:"window"`
	Benchmarks  Benchmark          `json:"benchmarks"`
	Counts      TierCounts         `json:"counts"`
	Goals       ClassificationGoal `json:"goals"`
	GeneratedAt time.Time          `json:"generated_at"`
}

func (ClassificationSnapshot) AnalysisType() AnalysisType { return AnalysisClassification }

type CreativePattern struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AdIDs       []string `json:"ad_ids"`
}

type PatternsPayload struct {
	Patterns []CreativePattern `json:"patterns"`
}

func (PatternsPayload) AnalysisType() AnalysisType { return AnalysisPatterns }

type BriefPayload struct {
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}

func (BriefPayload) AnalysisType() AnalysisType { return AnalysisBrief }

type InsightsPayload struct {
	Items []string `json:"items"`
}

func (InsightsPayload) AnalysisType() AnalysisType { return AnalysisInsights }

type TestSuggestion struct {
	Hypothesis string `json:"hypothesis"`
	Variable   string `json:"variable"`
}

type SuggestionsPayload struct {
	Suggestions []TestSuggestion `json:"suggestions"`
}

func (SuggestionsPayload) AnalysisType() AnalysisType { return AnalysisSuggestions }

// EncodeAnalysisPayload serializa a variante para a coluna JSONB
func EncodeAnalysisPayload(p AnalysisPayload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("payload de análise vazio")
	}
	return json.Marshal(p)
}

// DecodeAnalysisPayload reconstrói a variante a partir do tipo gravado
func DecodeAnalysisPayload(t AnalysisType, data []byte) (AnalysisPayload, error) {
	switch t {
	case AnalysisClassification:
		return decodePayload[ClassificationSnapshot](data)
	case AnalysisPatterns:
		return decodePayload[PatternsPayload](data)
	case AnalysisBrief:
		return decodePayload[BriefPayload](data)
	case AnalysisInsights:
		return decodePayload[InsightsPayload](data)
	case AnalysisSuggestions:
		return decodePayload[SuggestionsPayload](data)
	}

	return nil, fmt.Errorf("tipo de análise desconhecido: %q", t)
}

func decodePayload[T AnalysisPayload](data []byte) (AnalysisPayload, error) {
	var p T
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}
