package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	baseURL        = "https://generativelanguage.googleapis.com/v1beta/models"
	requestTimeout = 15 * time.Second
)

// Fallback texts returned when the generative API is unreachable or rejects a
// request. Callers treat them as "draft unavailable" and let the user retry;
// a bridge failure is never fatal to the operation in progress.
const (
	FallbackLegalAdvice = "Desculpe, ocorreu um erro ao consultar o assistente jurídico."
	FallbackNotice      = "Erro ao gerar convocatória."
	FallbackMinutes     = "Erro ao gerar a ata."
)

// NoticeContext carries the structured data a meeting notice is drafted from.
type NoticeContext struct {
	BuildingName string
	Title        string
	Date         string
	Time         string
	Location     string
	AgendaItems  []string
}

// MinutesAttendee is one attendance line in a minutes draft request.
type MinutesAttendee struct {
	Name         string
	FractionCode string
	Role         string
}

// MinutesResolution is one deliberation in a minutes draft request.
type MinutesResolution struct {
	PointTitle          string
	ProposalDescription string
	DiscussionSummary   string
	VotesFor            int
	VotesAgainst        int
	Abstentions         int
	PermilageFor        int
	Approved            bool
	MajorityRequired    string
}

// MinutesContext carries the full merged meeting record the minutes are
// drafted from.
type MinutesContext struct {
	BuildingName  string
	Date          string
	Time          string
	EndTime       string
	Location      string
	PresidentName string
	SecretaryName string
	Attendees     []MinutesAttendee
	Resolutions   []MinutesResolution
}

// Client is the document drafting bridge. Every method returns usable text:
// on failure the fixed fallback string for that document kind is returned
// instead of an error.
type Client interface {
	LegalAdvice(ctx context.Context, query string) string
	MeetingNotice(ctx context.Context, notice NoticeContext) string
	Minutes(ctx context.Context, minutes MinutesContext) string
}

type geminiClient struct {
	httpClient *resty.Client
	base       string
	model      string
	logger     *zap.Logger
}

// NewClient creates a configured Gemini client.
func NewClient(apiKey, model string, logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetHeader("content-type", "application/json").
		SetQueryParam("key", apiKey).
		SetTimeout(requestTimeout)

	return &geminiClient{httpClient: client, base: baseURL, model: model, logger: logger}
}

// NewDisabled returns a bridge that always answers with the fallback texts.
// Used when no API key is configured.
func NewDisabled() Client {
	return disabledClient{}
}

type disabledClient struct{}

func (disabledClient) LegalAdvice(context.Context, string) string { return FallbackLegalAdvice }

func (disabledClient) MeetingNotice(context.Context, NoticeContext) string { return FallbackNotice }

func (disabledClient) Minutes(context.Context, MinutesContext) string { return FallbackMinutes }

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const legalSystemInstruction = `És um assistente jurídico especializado no Regime Jurídico da Propriedade Horizontal de Portugal.
Ajuda administradores de condomínio a entender as leis, quóruns de votação, e obrigações fiscais.
Responde sempre em Português de Portugal. Usa termos como "Fração Autónoma", "Permilagem", "Quotas", "Fundo de Reserva".`

func (c *geminiClient) LegalAdvice(ctx context.Context, query string) string {
	text, err := c.generate(ctx, legalSystemInstruction, query)
	if err != nil {
		c.logger.Warn("legal advice draft failed", zap.Error(err))
		return FallbackLegalAdvice
	}
	return text
}

func (c *geminiClient) MeetingNotice(ctx context.Context, notice NoticeContext) string {
	prompt := fmt.Sprintf(`Cria uma convocatória formal para uma Assembleia de Condomínio em Portugal.
Condomínio: %s
Título: %s
Data: %s
Hora: %s
Local: %s
Pontos da Ordem do Dia: %s

A convocatória deve seguir as normas do Código Civil Português (Artigo 1432º).
Deve incluir:
1. Identificação clara do condomínio.
2. Data, hora e local exatos.
3. Ordem do dia detalhada.
4. Informação sobre a segunda convocatória (caso não haja quórum na primeira).
5. Menção à obrigatoriedade do Fundo de Reserva.`,
		notice.BuildingName, notice.Title, notice.Date, notice.Time, notice.Location,
		strings.Join(notice.AgendaItems, ", "))

	text, err := c.generate(ctx,
		"És um administrador de condomínios experiente em Portugal. Escreves convocatórias formais, claras e juridicamente corretas em Português de Portugal.",
		prompt)
	if err != nil {
		c.logger.Warn("meeting notice draft failed", zap.Error(err))
		return FallbackNotice
	}
	return text
}

func (c *geminiClient) Minutes(ctx context.Context, minutes MinutesContext) string {
	var attendees strings.Builder
	for _, a := range minutes.Attendees {
		fmt.Fprintf(&attendees, "- %s (Fração: %s, Papel: %s)\n", a.Name, a.FractionCode, a.Role)
	}

	var resolutions strings.Builder
	for _, r := range minutes.Resolutions {
		decision := "REJEITADO"
		if r.Approved {
			decision = "APROVADO"
		}
		fmt.Fprintf(&resolutions, `
PONTO: %s
DESCRIÇÃO DA PROPOSTA VOTADA: %s
RESUMO DOS DEBATES: %s
VOTAÇÃO:
- Votos a Favor (Sim): %d
- Votos Contra (Não): %d
- Abstenções: %d
- Permilagem Favorável: %d/1000
DECISÃO FINAL: %s
MAIORIA EXIGIDA: %s
`, r.PointTitle, r.ProposalDescription, r.DiscussionSummary,
			r.VotesFor, r.VotesAgainst, r.Abstentions, r.PermilageFor,
			decision, r.MajorityRequired)
	}

	prompt := fmt.Sprintf(`Redige a Ata Formal da Assembleia de Condomínio baseada nos seguintes dados reais da reunião:

CONDOMÍNIO: %s
DATA: %s
HORA INÍCIO: %s
HORA FIM: %s
LOCAL: %s
PRESIDENTE: %s
SECRETÁRIO: %s

LISTA DE PRESENTES:
%s
DELIBERAÇÕES E VOTAÇÕES DETALHADAS:
%s
Instruções:
- Segue rigorosamente o formalismo jurídico português para atas de condomínio.
- Elabora o texto dos debates de forma profissional e concisa.
- Menciona que a ata foi lida e aprovada por todos os presentes.
- Inclui espaço para assinaturas no final.`,
		minutes.BuildingName, minutes.Date, minutes.Time, minutes.EndTime,
		minutes.Location, minutes.PresidentName, minutes.SecretaryName,
		attendees.String(), resolutions.String())

	text, err := c.generate(ctx,
		"És um oficial de atas de condomínio em Portugal. Escreves atas detalhadas, formais e com validade jurídica em Português de Portugal.",
		prompt)
	if err != nil {
		c.logger.Warn("minutes draft failed", zap.Error(err))
		return FallbackMinutes
	}
	return text
}

func (c *geminiClient) generate(ctx context.Context, system, prompt string) (string, error) {
	reqBody := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: system}}},
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
	}

	var respBody generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(fmt.Sprintf("%s/%s:generateContent", c.base, c.model))

	if err != nil {
		return "", fmt.Errorf("gemini api call: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini api error: %s", resp.String())
	}
	if len(respBody.Candidates) == 0 || len(respBody.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	text := strings.TrimSpace(respBody.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("blank candidate text")
	}
	return text, nil
}
