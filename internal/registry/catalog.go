package registry

import "github.com/vitall-hq/vitall_backend/internal/core/domain"

// Default returns the production module catalog. The deployment seed keeps the
// persisted module table aligned with these names.
func Default() *Registry {
	return MustNew([]ModuleDefinition{
		{
			Name:        "Planning",
			DisplayName: "Planning",
			Category:    domain.CategoryHR,
			Icon:        "/assets/icons/Planning.svg",
			Description: "Gérez les plannings de vos équipes, suivez les astreintes et analysez les données de performance opérationnelle en temps réel.",
			AdminRoutes: []ModuleRoute{
				{Title: "Planning", Href: "/admin/planning"},
				{Title: "Astreintes", Href: "/admin/planning/astreintes"},
				{Title: "Données analytiques", Href: "/admin/planning/donnees-analytiques"},
			},
			APIPrefixes: []string{"/api/planning"},
			Version:     "1.0.0",
		},
		{
			Name:        "Recrutement",
			DisplayName: "Recrutement",
			Category:    domain.CategoryHR,
			Icon:        "/assets/icons/recrutement.svg",
			Description: "Optimisez vos processus de recrutement, du sourcing à l'onboarding, avec une interface intuitive et collaborative.",
			AdminRoutes: []ModuleRoute{
				{Title: "Candidatures", Href: "/admin/modules/recruit-firefighter/candidates"},
				{Title: "Casernes", Href: "/admin/casernes"},
				{Title: "Transfert", Href: "/admin/transfert"},
				{Title: "Ma caserne", Href: "/admin/ma-caserne"},
				{Title: "Données analytiques", Href: "/admin/analytics"},
			},
			UserRoutes: []ModuleRoute{
				{Title: "Dossier", Href: "/dashboard/candidature/dossier"},
				{Title: "Caserne", Href: "/dashboard/candidature/caserne"},
			},
			APIPrefixes: []string{"/api/recrutement"},
			Version:     "1.0.0",
		},
		{
			Name:        "Congés",
			DisplayName: "Congés",
			Category:    domain.CategoryHR,
			Icon:        "/assets/icons/recrutement.svg",
			Description: "Gérez les demandes de congés de vos équipes avec un calendrier partagé et un workflow de validation.",
			AdminRoutes: []ModuleRoute{
				{Title: "Demandes", Href: "/admin/modules/conges/demandes"},
				{Title: "Calendrier", Href: "/admin/modules/conges/calendrier"},
			},
			APIPrefixes: []string{"/api/conges"},
			Version:     "1.0.0",
		},
		{
			Name:        "Formation",
			DisplayName: "Formation",
			Category:    domain.CategoryHR,
			Icon:        "/assets/icons/iconFormation.svg",
			Description: "Gérez le catalogue de formations, suivez les sessions et les montées en compétences de vos collaborateurs.",
			AdminRoutes: []ModuleRoute{
				{Title: "Catalogue", Href: "/admin/modules/formation/catalogue"},
				{Title: "Mes sessions", Href: "/admin/modules/formation/sessions"},
			},
			APIPrefixes: []string{"/api/formation"},
			Version:     "1.0.0",
		},
		{
			Name:        "Paie",
			DisplayName: "Paie",
			Category:    domain.CategoryHR,
			Icon:        "/assets/icons/Planning.svg",
			Description: "Automatisez la génération et la distribution de vos fiches de paie. Conforme aux dernières normes en vigueur.",
			APIPrefixes: []string{"/api/paie"},
			Version:     "1.0.0",
		},
		{
			Name:        "Flottes",
			DisplayName: "Flottes",
			Category:    domain.CategoryManagement,
			Icon:        "/assets/icons/iconFlotte.svg",
			Description: "Gérez l'ensemble de votre parc automobile en quelques clics. Suivez les entretiens, les consommations et les attributions.",
			APIPrefixes: []string{"/api/flottes"},
			Version:     "1.0.0",
		},
		{
			Name:        "Chat interne",
			DisplayName: "Chat interne",
			Category:    domain.CategoryCommunication,
			Icon:        "/assets/icons/iconChat.svg",
			Description: "Facilitez la communication entre vos collaborateurs avec notre outil de messagerie instantanée sécurisé.",
			APIPrefixes: []string{"/api/chat"},
			Version:     "1.0.0",
		},
		{
			Name:        "Compta",
			DisplayName: "Compta",
			Category:    domain.CategoryManagement,
			Icon:        "/assets/icons/iconGestionBulletinPaye.svg",
			Description: "Module de comptabilité pour gérer vos factures et dépenses.",
			AdminRoutes: []ModuleRoute{
				{Title: "Factures", Href: "/admin/modules/compta/factures"},
				{Title: "Trésorerie", Href: "/admin/modules/compta/tresorerie"},
			},
			APIPrefixes: []string{"/api/compta"},
			Version:     "1.0.0",
		},
		{
			Name:        "Matériel",
			DisplayName: "Matériel",
			Category:    domain.CategoryManagement,
			Icon:        "/assets/icons/Planning.svg",
			Description: "Gérez l'inventaire et le suivi de votre matériel.",
			AdminRoutes: []ModuleRoute{
				{Title: "Inventaire", Href: "/admin/modules/materiel/inventaire"},
			},
			APIPrefixes: []string{"/api/materiel"},
			Version:     "1.0.0",
		},
	})
}
