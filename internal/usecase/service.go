package usecase

import (
	"lexdata-backend/internal/domain"
)

type serviceCatalog struct{}

// NewServiceCatalog creates the static service catalog
func NewServiceCatalog() domain.ServiceCatalog {
	return &serviceCatalog{}
}

// GetAllServices builds the catalog fresh on every call so no caller can
// mutate shared state through the returned map.
func (sc *serviceCatalog) GetAllServices() map[string]domain.ServiceInfo {
	return map[string]domain.ServiceInfo{
		"consultoria": {
			Name:        "Consultoria Estratégica & Inteligência de Negócios",
			Description: "Dashboards e BI integrados, análise preditiva e planejamento estratégico baseado em dados",
			Features: []string{
				"Dashboards e BI integrados",
				"Análise preditiva para decisões estratégicas",
				"Planejamento estratégico baseado em dados",
			},
		},
		"legaltech": {
			Name:        "Soluções Jurídico-Tecnológicas (LegalTech)",
			Description: "Automação de processos jurídicos, IA para previsão de resultados e compliance digital",
			Features: []string{
				"Automação de cálculos trabalhistas e contratos",
				"Previsão de resultados judiciais com IA",
				"Compliance digital e LGPD",
			},
		},
		"financas": {
			Name:        "Finanças & Investimentos",
			Description: "Planejamento financeiro, análise de risco e estudos preditivos de mercado",
			Features: []string{
				"Planejamento financeiro e tributário",
				"Modelos de análise de risco e scoring",
				"Estudos preditivos de mercado",
			},
		},
		"tecnologia": {
			Name:        "Tecnologia & Cloud",
			Description: "Soluções em nuvem AWS, integração de dados e aplicativos web",
			Features: []string{
				"Aplicativos web e automações em nuvem AWS",
				"Integração de dados através de ETL, APIs e Data Lakes",
				"Segurança e escalabilidade garantidas",
			},
		},
		"treinamento": {
			Name:        "Educação & Treinamentos",
			Description: "Capacitação profissional em LegalTech, Big Data e Inteligência Competitiva",
			Features: []string{
				"Workshops e mentorias especializadas",
				"Cursos em LegalTech e Big Data",
				"Treinamentos em Inteligência Competitiva",
			},
		},
	}
}

// GetService looks up a single record by catalog key.
func (sc *serviceCatalog) GetService(serviceType string) (domain.ServiceInfo, error) {
	svc, ok := sc.GetAllServices()[serviceType]
	if !ok {
		return domain.ServiceInfo{}, domain.ErrServiceNotFound
	}
	return svc, nil
}
