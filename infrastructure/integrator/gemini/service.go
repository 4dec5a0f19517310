package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const analysisPromptTemplate = `Atue como um especialista sênior em Marketing Digital e Análise de Dados.
Analise os seguintes dados de campanha de rastreamento (Funil de Vendas):

Dados: %s

1. Identifique qual anúncio tem a melhor performance global.
2. Identifique onde está o maior gargalo (drop-off) geral.
3. Dê 3 sugestões táticas curtas para melhorar os resultados.

Mantenha a resposta concisa, direta e formatada em Markdown simples. Use um tom profissional e motivador.`

type GeminiIntegrator interface {
	// AnalyzeCampaignData gera um resumo textual sobre os dados de campanha.
	// Falhas degradam para uma mensagem amigável, nunca para erro do request.
	AnalyzeCampaignData(ctx context.Context, campaigns any) string
}

type GeminiService struct {
	cfg        *config.Config
	httpClient *http.Client
}

func New(cfg *config.Config) GeminiIntegrator {
	return &GeminiService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (s *GeminiService) AnalyzeCampaignData(ctx context.Context, campaigns any) string {
	if s.cfg.Gemini.APIKey == "" {
		return "API_KEY não configurada. Adicione sua chave para insights de IA."
	}

	data := utils.PrettyJson(campaigns)

	payload, err := json.Marshal(generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: fmt.Sprintf(analysisPromptTemplate, data)}}},
		},
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar requisição para o Gemini")
		return "Erro ao conectar com a inteligência artificial. Tente novamente mais tarde."
	}

	url := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		s.cfg.Gemini.BaseURL,
		s.cfg.Gemini.Model,
		s.cfg.Gemini.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar requisição para o Gemini")
		return "Erro ao conectar com a inteligência artificial. Tente novamente mais tarde."
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao chamar o Gemini")
		return "Erro ao conectar com a inteligência artificial. Tente novamente mais tarde."
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.WithField("status", resp.Status).Error("Gemini retornou status inesperado")
		return "Erro ao conectar com a inteligência artificial. Tente novamente mais tarde."
	}

	var response generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta do Gemini")
		return "Erro ao conectar com a inteligência artificial. Tente novamente mais tarde."
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "Não foi possível gerar insights no momento."
	}

	return response.Candidates[0].Content.Parts[0].Text
}
