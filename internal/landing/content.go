package landing

// Anchor is an in-page navigation target.
type Anchor struct {
	ID    string
	Label string
}

// Item is a titled block of copy.
type Item struct {
	Step  string
	Title string
	Desc  string
}

// Plan is a pricing tier.
type Plan struct {
	Name     string
	Desc     string
	Features []string
	CTA      string
	Popular  bool
}

// Testimonial is a quote attributed to a role.
type Testimonial struct {
	Text string
	Role string
}

// FAQEntry is one question of the FAQ accordion.
type FAQEntry struct {
	Question string
	Answer   string
}

// Content is the static copy of the landing page.
type Content struct {
	Brand         string
	BrandAccent   string
	Anchors       []Anchor
	HeroBadge     string
	HeroTitle     string
	HeroHighlight string
	HeroTitleEnd  string
	HeroLead      string
	PrimaryCTA    string
	SecondaryCTA  string

	ProblemTitle   string
	Problems       []Item
	SolutionTitle  string
	Solutions      []Item
	StepsTitle     string
	StepsSubtitle  string
	Steps          []Item
	BenefitsTitle  string
	BenefitsLead   string
	Benefits       []Item
	SecurityBadge  string
	SecurityTitle  string
	SecurityLead   string
	SecurityItems  []string
	PlansTitle     string
	PlansLead      string
	Plans          []Plan
	QuotesTitle    string
	QuotesLead     string
	Testimonials   []Testimonial
	FAQTitle       string
	FAQ            []FAQEntry
	ClosingTitle   string
	ClosingLead    string
	FooterNote     string
	ModalTitle     string
	ModalLead      string
	ModalDisclaim  string
	SuccessTitle   string
	SuccessMessage string
}

// DefaultContent returns the copy of the Histórico Locatício landing page.
func DefaultContent() Content {
	return Content{
		Brand:       "Histórico",
		BrandAccent: "Locatício",
		Anchors: []Anchor{
			{ID: "como-funciona", Label: "Como funciona"},
			{ID: "beneficios", Label: "Benefícios"},
			{ID: "seguranca", Label: "Segurança/LGPD"},
			{ID: "planos", Label: "Planos"},
			{ID: "faq", Label: "FAQ"},
		},
		HeroBadge:     "Feito para imobiliárias e administradoras",
		HeroTitle:     "Decida com mais",
		HeroHighlight: "segurança",
		HeroTitleEnd:  "antes de aprovar um aluguel.",
		HeroLead:      "Consulte e registre histórico locatício objetivo (pagamentos, atrasos e vistorias), com transparência total e conformidade com a LGPD.",
		PrimaryCTA:    "Solicitar demonstração",
		SecondaryCTA:  "Entrar na lista de espera",

		ProblemTitle: "Chega de aprovar contratos no escuro ou baseados apenas em score de crédito.",
		Problems: []Item{
			{Title: "Inadimplência Inesperada", Desc: "O score de crédito tradicional não reflete o comportamento específico do inquilino no aluguel."},
			{Title: "Aprovação Lenta", Desc: "Processos manuais de checagem de referências tomam tempo e são pouco confiáveis."},
			{Title: "Histórico Disperso", Desc: "As informações sobre bons e maus pagadores ficam presas dentro de cada imobiliária."},
		},
		SolutionTitle: "A Solução: Histórico Padronizado",
		Solutions: []Item{
			{Title: "Dados Verificáveis", Desc: "Informações objetivas compartilhadas entre imobiliárias com base legal."},
			{Title: "Análise de Comportamento", Desc: "Foco no que importa: como o inquilino cuida do imóvel e paga o aluguel."},
			{Title: "Transparência Total", Desc: "Inquilino visualiza seu histórico e pode contestar qualquer registro."},
		},
		StepsTitle:    "Como funciona a plataforma",
		StepsSubtitle: "Um fluxo simples, seguro e totalmente transparente para todas as partes.",
		Steps: []Item{
			{Step: "01", Title: "Consulta por CPF", Desc: "A imobiliária consulta o histórico com base legal e finalidade específica."},
			{Step: "02", Title: "Análise de Indicadores", Desc: "Visualize pontualidade, linha do tempo de contratos e vistorias anteriores."},
			{Step: "03", Title: "Registro de Eventos", Desc: "Atualize mensalmente o status (pago, atraso, inadimplência, vistoria)."},
			{Step: "04", Title: "Transparência", Desc: "O inquilino acessa seus dados e pode contestar registros se necessário."},
		},
		BenefitsTitle: "Benefícios para sua imobiliária",
		BenefitsLead:  "Mais do que segurança, entregamos eficiência e padronização para sua operação.",
		Benefits: []Item{
			{Title: "Redução de Risco", Desc: "Identifique padrões de comportamento antes da assinatura do contrato."},
			{Title: "Aprovação Ágil", Desc: "Dados prontos para consulta, eliminando ligações para referências."},
			{Title: "Menos Subjetividade", Desc: "Decisões baseadas em evidências e histórico real de locação."},
			{Title: "Fidelize Bons Inquilinos", Desc: "O histórico positivo ajuda o bom inquilino a alugar mais fácil."},
		},
		SecurityBadge: "Segurança em primeiro lugar",
		SecurityTitle: "Conformidade total com a LGPD e ética no tratamento de dados.",
		SecurityLead:  `Não somos uma "lista negra". Somos um ecossistema de dados objetivos, onde o direito do titular é respeitado em cada etapa do processo.`,
		SecurityItems: []string{
			"Mascaramento de CPF em listagens",
			"Logs de auditoria de consultas",
			"Controle de acesso por CNPJ",
			"Direito de contestação do titular",
			"Sem comentários livres",
			"Dados minimizados",
		},
		PlansTitle: "Planos para todos os tamanhos",
		PlansLead:  "Escolha o plano que melhor se adapta ao volume da sua imobiliária.",
		Plans: []Plan{
			{
				Name:     "Start",
				Desc:     "Ideal para pequenas imobiliárias e administradoras locais.",
				Features: []string{"Até 50 consultas/mês", "2 usuários simultâneos", "Suporte via e-mail", "Relatórios básicos"},
				CTA:      "Quero uma proposta",
			},
			{
				Name:     "Pro",
				Desc:     "Para imobiliárias em crescimento que precisam de escala.",
				Features: []string{"Consultas ilimitadas*", "Usuários ilimitados", "Suporte prioritário", "Exportação de dados (CSV/PDF)", "Dashboard avançado"},
				CTA:      "Quero uma proposta",
				Popular:  true,
			},
			{
				Name:     "Enterprise",
				Desc:     "Soluções customizadas para grandes redes e franquias.",
				Features: []string{"Integração via API", "SLA garantido", "Suporte dedicado", "Treinamento de equipe", "Single Sign-On (SSO)"},
				CTA:      "Falar com especialista",
			},
		},
		QuotesTitle: "O que dizem nossos parceiros",
		QuotesLead:  "Depoimentos ilustrativos de quem já utiliza a inteligência de dados no aluguel.",
		Testimonials: []Testimonial{
			{Text: "A segurança na aprovação aumentou drasticamente. Hoje não dependemos apenas de referências por telefone que muitas vezes eram forjadas.", Role: "Diretor Comercial"},
			{Text: "O processo de análise ficou 40% mais rápido. O histórico objetivo nos dá a confiança necessária para fechar contratos em menos de 24h.", Role: "Gerente de Locação"},
			{Text: "A transparência com o inquilino é o diferencial. Eles se sentem valorizados quando mostramos que o bom histórico deles conta pontos.", Role: "Proprietário de Imobiliária"},
		},
		FAQTitle: "Perguntas Frequentes",
		FAQ: []FAQEntry{
			{Question: "Isso é uma 'lista negra'?", Answer: "Não. Listas negras são subjetivas e muitas vezes punitivas. O Histórico Locatício é uma plataforma de dados objetivos e verificáveis. Todos os registros são baseados em fatos (pagamentos, vistorias, contratos) e o inquilino tem total transparência e direito de contestação."},
			{Question: "Quais dados aparecem na consulta?", Answer: "Aparecem indicadores de pontualidade (score 0-100), percentual de pagamentos em dia, ocorrência de atrasos superiores a 30 dias e uma linha do tempo de eventos contratuais (início, fim, vistorias)."},
			{Question: "Como fica a conformidade com a LGPD?", Answer: "Operamos com base legal de legítimo interesse e proteção ao crédito, dependendo do caso. Seguimos os princípios de minimização (coletamos apenas o necessário), finalidade (uso exclusivo para análise locatícia) e transparência (acesso total do titular aos seus dados)."},
			{Question: "Precisa de consentimento do inquilino?", Answer: "Em muitos casos, a base legal de proteção ao crédito ou execução de contrato é suficiente, mas orientamos que as imobiliárias incluam cláusulas de transparência em seus termos de serviço, informando sobre a consulta e registro no sistema."},
			{Question: "Como começo a usar?", Answer: "Basta solicitar uma demonstração. Nossa equipe entrará em contato para validar sua imobiliária (exigimos CNPJ ativo no ramo) e realizar o onboarding da sua equipe."},
		},
		ClosingTitle:   "Quer validar em 7 dias com sua equipe?",
		ClosingLead:    "Junte-se às imobiliárias que estão profissionalizando a análise de risco e construindo um mercado mais seguro.",
		FooterNote:     "Histórico Locatício. Dados objetivos para decisões de locação mais seguras.",
		ModalTitle:     "Solicitar demonstração",
		ModalLead:      "Preencha os dados abaixo e entraremos em contato.",
		ModalDisclaim:  "Ao enviar, você concorda com nossos Termos de Uso e Política de Privacidade. Seus dados estão seguros.",
		SuccessTitle:   "Solicitação enviada!",
		SuccessMessage: "Obrigado pelo interesse. Nossa equipe entrará em contato pelo WhatsApp em breve para agendar sua demonstração.",
	}
}

// IsAnchor reports whether id is one of the page's navigation targets.
func (c Content) IsAnchor(id string) bool {
	for _, a := range c.Anchors {
		if a.ID == id {
			return true
		}
	}
	return false
}
