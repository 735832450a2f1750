package recommending

// Chaves do léxico de recomendações. Cada faixa de KPI resolve para uma chave
// fixa; o texto é conteúdo de produto, mantido separado da seleção de faixa.
const (
	PortfolioRateVeryLow   = "portfolio_rate_very_low"
	PortfolioRateLow       = "portfolio_rate_low"
	PortfolioRateGood      = "portfolio_rate_good"
	PortfolioRateVeryGood  = "portfolio_rate_very_good"
	PortfolioRateExcellent = "portfolio_rate_excellent"

	NewWorkRateFull      = "new_work_rate_full"
	NewWorkRateSuper     = "new_work_rate_super"
	NewWorkRateExcellent = "new_work_rate_excellent"
	NewWorkRateGood      = "new_work_rate_good"
	NewWorkRateLow       = "new_work_rate_low"

	LimitUsageVeryLow   = "limit_usage_very_low"
	LimitUsageLow       = "limit_usage_low"
	LimitUsageNormal    = "limit_usage_normal"
	LimitUsageGood      = "limit_usage_good"
	LimitUsageExcellent = "limit_usage_excellent"

	AcceptanceRateVeryLow   = "acceptance_rate_very_low"
	AcceptanceRateLow       = "acceptance_rate_low"
	AcceptanceRateNormal    = "acceptance_rate_normal"
	AcceptanceRateGood      = "acceptance_rate_good"
	AcceptanceRateExcellent = "acceptance_rate_excellent"
)

// Lexicon são os textos de orientação mostrados ao vendedor, um por faixa
var Lexicon = map[string]string{
	PortfolioRateVeryLow:   "Se você começou há pouco tempo nos stocks, está tudo bem — dê tempo ao portfólio. Mas se já está há bastante tempo, o problema está na qualidade do conteúdo.",
	PortfolioRateLow:       "As vendas existem, mas o potencial ainda não foi todo aproveitado. O que fazer: trabalhe os temas que os compradores mais procuram e aumente a variedade do material.",
	PortfolioRateGood:      "Você está no caminho certo! O que fazer: continue no mesmo ritmo e adicione mais temas ao portfólio.",
	PortfolioRateVeryGood:  "Resultado forte. O que fazer: escale — aumente o volume de envios mantendo a qualidade atual.",
	PortfolioRateExcellent: "Seu portfólio está vendendo com força. O que fazer: aumente o volume de produção preservando o padrão de qualidade que já funciona.",

	NewWorkRateFull:      "Tudo certo — você começou há pouco tempo para tirar conclusões. O que fazer: dê tempo; as vendas ganham tração nos primeiros 2-3 meses após o envio.",
	NewWorkRateSuper:     "Está tudo muito bem estruturado: as obras novas têm qualidade e entram bem nas vendas. O que fazer: simplesmente aumente o volume de envios.",
	NewWorkRateExcellent: "Resultado muito forte. O que fazer: continue enviando com a mesma qualidade e adicione temas novos.",
	NewWorkRateGood:      "O conteúdo novo começou a vender — bom sinal. O que fazer: amplie a quantidade de temas para atrair novos compradores.",
	NewWorkRateLow:       "Se você começou a enviar conteúdo novo há pouco, ainda é cedo — não se preocupe. Mas se já envia novidades há 3+ meses, o problema está na qualidade das obras novas.",

	LimitUsageVeryLow:   "Você não está usando seu potencial. O que fazer: envie mais — o limite existe para ser aproveitado.",
	LimitUsageLow:       "Bom começo, mas ainda abaixo do nível ideal. O que fazer: mire pelo menos 70-80% do limite.",
	LimitUsageNormal:    "Você trabalha num bom ritmo, mas ainda há margem para crescer. O que fazer: chegue perto do máximo do limite.",
	LimitUsageGood:      "Ótimo resultado, você está perto do máximo. O que fazer: complete o limite para usar 100% do potencial das obras.",
	LimitUsageExcellent: "Você extraiu tudo o que dava do limite. O que fazer: mantenha esse sistema de envios daqui para frente.",

	AcceptanceRateVeryLow:   "Resultado fraco. O que fazer: reveja os materiais de estudo e identifique onde estão os erros de qualidade.",
	AcceptanceRateLow:       "Há o que melhorar. O que fazer: revisite as videoaulas para reforçar os pontos fracos.",
	AcceptanceRateNormal:    "Este é o nível padrão com que a maioria dos autores trabalha. O que fazer: continue enviando e acompanhe a análise em paralelo.",
	AcceptanceRateGood:      "Resultados fortes. O que fazer: escale as direções que já estão dando certo.",
	AcceptanceRateExcellent: "Uma taxa de aceitação assim não é para qualquer um. O que fazer: mantenha a qualidade e aumente o volume.",
}
