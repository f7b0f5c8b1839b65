// translations.go - Static EN/FR content table for the portfolio page
package main

// dict is a nested translation node. Leaves are strings or []string
// (itemized lists such as position responsibilities).
type dict map[string]any

// translations holds the full content table for both locales. Built once,
// never mutated at runtime. Every dotted path present in one locale is
// expected to resolve in the other; parity is checked in tests.
var translations = map[string]dict{
	"en": {
		"nav": dict{
			"home":       "Home",
			"about":      "About",
			"skills":     "Skills",
			"experience": "Experience",
			"projects":   "Projects",
			"contact":    "Contact",
		},
		"hero": dict{
			"badge":       "Mobile Developer",
			"title":       "Hi, I'm",
			"name":        "Ghassen Bouaziz",
			"subtitle":    "Senior Full-Stack Developer specializing in Mobile Development",
			"description": "With nearly 4 years of experience, I specialize in React Native and Flutter development. I've contributed to the creation and publication of more than 12 mobile applications on the App Store and Play Store, including several high-traffic apps.",
			"stats": dict{
				"years":        "Years Experience",
				"apps":         "Published Apps",
				"satisfaction": "Client Satisfaction",
			},
			"actions": dict{
				"viewWork":   "View My Work",
				"getInTouch": "Get In Touch",
			},
		},
		"about": dict{
			"title":        "About Me",
			"subtitle":     "Passionate about creating exceptional mobile experiences",
			"heading":      "Senior Mobile Developer & Full-Stack Expert",
			"description1": "I am a senior mobile developer with nearly 4 years of experience, specialized in React Native, with strong Flutter proficiency. I have contributed to the creation and publication of more than 12 mobile applications on the App Store and Play Store, including several high-traffic apps.",
			"description2": "Mastering the complete mobile development lifecycle from design to production deployment, I pay particular attention to application performance and user experience. Thanks to my skills in Node.js (back-end) and React.js (front-end), I am able to design high-performance, scalable full-stack solutions perfectly adapted to iOS, Android, and web environments.",
			"highlights": dict{
				"performance": dict{
					"title":       "Performance Focused",
					"description": "Optimizing apps for speed and efficiency",
				},
				"ai": dict{
					"title":       "AI Integration",
					"description": "Expert in OpenAI and AI-powered features",
				},
				"collaboration": dict{
					"title":       "Team Collaboration",
					"description": "Experienced in remote and cross-functional teams",
				},
			},
		},
		"skills": dict{
			"title":    "Skills & Technologies",
			"subtitle": "Technologies I work with",
			"categories": dict{
				"mobile":    "Mobile Development",
				"fullstack": "Frontend & Backend",
				"cloud":     "Cloud & AI Services",
			},
		},
		"experience": dict{
			"title":    "Professional Experience",
			"subtitle": "My career journey",
			"positions": dict{
				"leStud": dict{
					"title":       "Full-Stack Developer",
					"company":     "Le Stud (Selego)",
					"period":      "04/2023 - Present",
					"description": "Participation in several mobile and web projects as a full-stack developer, primarily on React Native, Node.js, and React.js stacks.",
					"responsibilities": []string{
						"Development of web dashboards with React.js for user data visualization",
						"Content administration and access management",
						"Implementation of error logging and analytics",
						"Active collaboration with product, design, and QA teams",
					},
				},
				"ithake": dict{
					"title":       "Mobile Developer",
					"company":     "Ithake",
					"period":      "01/2024 - 03/2025",
					"description": "Participation in creating the CarteEco application, highlighting ecological impact products/services.",
					"responsibilities": []string{
						"Key role in back-end architecture and third-party API integration",
						"Payment management and mapping integration",
						"Delivery of scalable and performant solutions",
						"Production deployment and maintenance",
					},
				},
				"tifo": dict{
					"title":       "Mobile Developer",
					"company":     "Tifo",
					"period":      "06/2023 - 01/2024",
					"description": "Development of a sports and financial management application for clubs and associations.",
					"responsibilities": []string{
						"Design of modules for team management, dues, notifications, and statistics",
						"Participation in technical decisions on code structuring",
						"Collaboration with remote teams in Paris",
					},
				},
				"genext": dict{
					"title":       "Mobile Developer",
					"company":     "Genext IT",
					"period":      "07/2021 - 05/2023",
					"description": "Development of several hybrid mobile applications with React Native for various clients.",
					"responsibilities": []string{
						"Implementation of CI/CD pipelines and development best practices",
						"Mentoring of interns and junior developers on concrete projects",
						"Work on code quality, performance, and automated testing",
					},
				},
			},
		},
		"projects": dict{
			"title":    "Featured Projects",
			"subtitle": "Some of my recent work",
			"items": dict{
				"ibitibi": dict{
					"title":       "Ibitibi",
					"description": "AI-personalized educational application (iOS & Android). Educational video streaming platform personalized via AI, targeting young users with complete project lifecycle management.",
					"appStore":    "App Store",
					"sourceCode":  "Source Code",
				},
				"carteEco": dict{
					"title":       "CarteEco (ITHAKE)",
					"description": "Eco-responsible mobile marketplace (iOS & Android). Connecting local associations and users via mobile application with ecological product indexing system.",
					"appStore":    "App Store",
					"sourceCode":  "Source Code",
				},
				"tifo": dict{
					"title":       "Tifo",
					"description": "Mobile application for sports clubs (iOS & Android). Tool for managing members, finances, and sports events with comprehensive team management modules.",
					"appStore":    "App Store",
					"sourceCode":  "Source Code",
				},
				"womensDrive": dict{
					"title":       "Women's Drive",
					"description": "Trip booking application with drivers (iOS). Trip management for targeted clientele via certified drivers with integrated maps and push notifications.",
					"appStore":    "App Store",
					"sourceCode":  "Source Code",
				},
				"fridgee": dict{
					"title":       "Fridgee",
					"description": "Intelligent culinary assistant (iOS & Android). Ingredient management application and AI-powered recipe generation using OpenAI integration.",
					"appStore":    "App Store",
					"sourceCode":  "Source Code",
				},
				"clicStore": dict{
					"title":       "ClicStore",
					"description": "Web and mobile marketplace (iOS & Android). Creation of personalized stores for sellers with complete client interface using Flutter and Material Design.",
					"appStore":    "App Store",
					"sourceCode":  "Source Code",
				},
			},
		},
		"contact": dict{
			"title":       "Get In Touch",
			"subtitle":    "Let's work together",
			"heading":     "Let's Connect",
			"description": "I'm always interested in new opportunities and exciting projects. Whether you have a question or just want to say hi, feel free to reach out!",
			"details": dict{
				"email":    "Email",
				"phone":    "Phone",
				"linkedin": "LinkedIn",
			},
			"form": dict{
				"name":    "Your Name",
				"email":   "Your Email",
				"subject": "Subject",
				"message": "Your Message",
				"send":    "Send Message",
				"sending": "Sending...",
				"success": "Message sent successfully! I'll get back to you soon.",
				"error":   "Sorry, there was an error sending your message. Please try again.",
			},
		},
		"footer": dict{
			"copyright": "All rights reserved.",
		},
		"downloadCV": "Download CV",
	},

	"fr": {
		"nav": dict{
			"home":       "Accueil",
			"about":      "À propos",
			"skills":     "Compétences",
			"experience": "Expérience",
			"projects":   "Projets",
			"contact":    "Contact",
		},
		"hero": dict{
			"badge":       "Développeur Mobile",
			"title":       "Salut, je suis",
			"name":        "Ghassen Bouaziz",
			"subtitle":    "Développeur Full-Stack Senior spécialisé dans le Développement Mobile",
			"description": "Avec près de 4 ans d'expérience, je me spécialise dans le développement React Native et Flutter. J'ai contribué à la création et publication de plus de 12 applications mobiles sur l'App Store et le Play Store, dont plusieurs applications à fort trafic.",
			"stats": dict{
				"years":        "Années d'Expérience",
				"apps":         "Applications Publiées",
				"satisfaction": "Satisfaction Client",
			},
			"actions": dict{
				"viewWork":   "Voir Mon Travail",
				"getInTouch": "Me Contacter",
			},
		},
		"about": dict{
			"title":        "À Propos de Moi",
			"subtitle":     "Passionné par la création d'expériences mobiles exceptionnelles",
			"heading":      "Développeur Mobile Senior & Expert Full-Stack",
			"description1": "Je suis un développeur mobile senior avec près de 4 ans d'expérience, spécialisé en React Native, avec une forte maîtrise de Flutter. J'ai contribué à la création et publication de plus de 12 applications mobiles sur l'App Store et le Play Store, dont plusieurs applications à fort trafic.",
			"description2": "Maîtrisant le cycle de vie complet du développement mobile, de la conception au déploiement en production, je porte une attention particulière aux performances de l'application et à l'expérience utilisateur. Grâce à mes compétences en Node.js (back-end) et React.js (front-end), je suis capable de concevoir des solutions full-stack performantes et évolutives parfaitement adaptées aux environnements iOS, Android et web.",
			"highlights": dict{
				"performance": dict{
					"title":       "Axé sur les Performances",
					"description": "Optimisation des applications pour la vitesse et l'efficacité",
				},
				"ai": dict{
					"title":       "Intégration IA",
					"description": "Expert en OpenAI et fonctionnalités alimentées par l'IA",
				},
				"collaboration": dict{
					"title":       "Collaboration d'Équipe",
					"description": "Expérience avec des équipes distantes et interfonctionnelles",
				},
			},
		},
		"skills": dict{
			"title":    "Compétences & Technologies",
			"subtitle": "Technologies avec lesquelles je travaille",
			"categories": dict{
				"mobile":    "Développement Mobile",
				"fullstack": "Frontend & Backend",
				"cloud":     "Services Cloud & IA",
			},
		},
		"experience": dict{
			"title":    "Expérience Professionnelle",
			"subtitle": "Mon parcours professionnel",
			"positions": dict{
				"leStud": dict{
					"title":       "Développeur Full-Stack",
					"company":     "Le Stud (Selego)",
					"period":      "04/2023 - Présent",
					"description": "Participation à plusieurs projets mobiles et web en tant que développeur full-stack, principalement sur les stacks React Native, Node.js et React.js.",
					"responsibilities": []string{
						"Développement de tableaux de bord web avec React.js pour la visualisation des données utilisateur",
						"Administration de contenu et gestion des accès",
						"Implémentation de la journalisation d'erreurs et d'analytics",
						"Collaboration active avec les équipes produit, design et QA",
					},
				},
				"ithake": dict{
					"title":       "Développeur Mobile",
					"company":     "Ithake",
					"period":      "01/2024 - 03/2025",
					"description": "Participation à la création de l'application CarteEco, mettant en avant les produits/services à impact écologique.",
					"responsibilities": []string{
						"Rôle clé dans l'architecture back-end et l'intégration d'APIs tierces",
						"Gestion des paiements et intégration cartographique",
						"Livraison de solutions évolutives et performantes",
						"Déploiement en production et maintenance",
					},
				},
				"tifo": dict{
					"title":       "Développeur Mobile",
					"company":     "Tifo",
					"period":      "06/2023 - 01/2024",
					"description": "Développement d'une application de gestion sportive et financière pour clubs et associations.",
					"responsibilities": []string{
						"Conception de modules pour la gestion d'équipes, cotisations, notifications et statistiques",
						"Participation aux décisions techniques sur la structuration du code",
						"Collaboration avec des équipes distantes à Paris",
					},
				},
				"genext": dict{
					"title":       "Développeur Mobile",
					"company":     "Genext IT",
					"period":      "07/2021 - 05/2023",
					"description": "Développement de plusieurs applications mobiles hybrides avec React Native pour divers clients.",
					"responsibilities": []string{
						"Implémentation de pipelines CI/CD et bonnes pratiques de développement",
						"Mentorat d'internes et développeurs juniors sur des projets concrets",
						"Travail sur la qualité du code, les performances et les tests automatisés",
					},
				},
			},
		},
		"projects": dict{
			"title":    "Projets en Vedette",
			"subtitle": "Quelques-uns de mes travaux récents",
			"items": dict{
				"ibitibi": dict{
					"title":       "Ibitibi",
					"description": "Application éducative personnalisée par IA (iOS & Android). Plateforme de streaming vidéo éducative personnalisée via IA, ciblant les jeunes utilisateurs avec gestion complète du cycle de vie du projet.",
					"appStore":    "App Store",
					"sourceCode":  "Code Source",
				},
				"carteEco": dict{
					"title":       "CarteEco (ITHAKE)",
					"description": "Marketplace mobile éco-responsable (iOS & Android). Connectant associations locales et utilisateurs via application mobile avec système d'indexation de produits écologiques.",
					"appStore":    "App Store",
					"sourceCode":  "Code Source",
				},
				"tifo": dict{
					"title":       "Tifo",
					"description": "Application mobile pour clubs sportifs (iOS & Android). Outil de gestion des membres, finances et événements sportifs avec modules complets de gestion d'équipe.",
					"appStore":    "App Store",
					"sourceCode":  "Code Source",
				},
				"womensDrive": dict{
					"title":       "Women's Drive",
					"description": "Application de réservation de trajets avec chauffeurs (iOS). Gestion de trajets pour clientèle ciblée via chauffeurs certifiés avec cartes intégrées et notifications push.",
					"appStore":    "App Store",
					"sourceCode":  "Code Source",
				},
				"fridgee": dict{
					"title":       "Fridgee",
					"description": "Assistant culinaire intelligent (iOS & Android). Application de gestion d'ingrédients et génération de recettes alimentée par IA utilisant l'intégration OpenAI.",
					"appStore":    "App Store",
					"sourceCode":  "Code Source",
				},
				"clicStore": dict{
					"title":       "ClicStore",
					"description": "Marketplace web et mobile (iOS & Android). Création de boutiques personnalisées pour vendeurs avec interface client complète utilisant Flutter et Material Design.",
					"appStore":    "App Store",
					"sourceCode":  "Code Source",
				},
			},
		},
		"contact": dict{
			"title":       "Me Contacter",
			"subtitle":    "Travaillons ensemble",
			"heading":     "Connectons-nous",
			"description": "Je suis toujours intéressé par de nouvelles opportunités et des projets passionnants. Que vous ayez une question ou que vous souhaitiez simplement dire bonjour, n'hésitez pas à me contacter !",
			"details": dict{
				"email":    "Email",
				"phone":    "Téléphone",
				"linkedin": "LinkedIn",
			},
			"form": dict{
				"name":    "Votre Nom",
				"email":   "Votre Email",
				"subject": "Sujet",
				"message": "Votre Message",
				"send":    "Envoyer le Message",
				"sending": "Envoi en cours...",
				"success": "Message envoyé avec succès ! Je vous répondrai bientôt.",
				"error":   "Désolé, il y a eu une erreur lors de l'envoi de votre message. Veuillez réessayer.",
			},
		},
		"footer": dict{
			"copyright": "Tous droits réservés.",
		},
		"downloadCV": "Télécharger CV",
	},
}
