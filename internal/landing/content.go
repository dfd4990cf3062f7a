package landing

import "html/template"

// Stat is one headline number under the hero
type Stat struct {
	Value string
	Label string
}

// Service is one offering card
type Service struct {
	ID          string
	Title       string
	Description string
	Features    []string
}

// Reason is one "why choose us" item
type Reason struct {
	Title       string
	Description string
}

// Project is one portfolio card
type Project struct {
	Title    string
	Subtitle string
	Summary  string
	Tags     []string
}

// FAQ is one question and answer
type FAQ struct {
	Question string
	Answer   string
}

// Content is the static marketing copy rendered by every theme
type Content struct {
	Brand           string
	HeroBadge       string
	HeroTitle       string
	HeroHighlight   string
	HeroDescription string
	Stats           []Stat
	Services        []Service
	Reasons         []Reason
	Projects        []Project
	Technologies    []string
	FAQs            []FAQ
	PhoneHref       template.URL
	PhoneDisplay    string
	Tagline         string
	Copyright       string
}

var DefaultContent = Content{
	Brand:         "Origem",
	HeroBadge:     "Transforming Ideas into Reality",
	HeroTitle:     "Your Partner in",
	HeroHighlight: "Salesforce, Web & Mobile",
	HeroDescription: "We deliver end-to-end technology solutions that transform your business. " +
		"From Salesforce customization to stunning web and mobile experiences.",
	Stats: []Stat{
		{Value: "150+", Label: "Projects Delivered"},
		{Value: "80+", Label: "Happy Clients"},
		{Value: "8+", Label: "Years Experience"},
		{Value: "4.9/5", Label: "Client Rating"},
	},
	Services: []Service{
		{
			ID:          "salesforce",
			Title:       "Salesforce Services",
			Description: "Expert customization, technical solutions, and development work",
			Features:    []string{"Custom Salesforce Development", "Integration & Migration", "Workflow Automation", "Technical Consulting"},
		},
		{
			ID:          "mobile",
			Title:       "Mobile App Development",
			Description: "Creating innovative mobile applications for iOS and Android",
			Features:    []string{"Native & Cross-Platform Apps", "UI/UX Design", "App Store Optimization", "Maintenance & Support"},
		},
		{
			ID:          "web",
			Title:       "Web Development",
			Description: "Website creation, digital presence, and web solutions",
			Features:    []string{"Custom Web Applications", "E-commerce Solutions", "Progressive Web Apps", "SEO Optimization"},
		},
	},
	Reasons: []Reason{
		{Title: "Customized Solutions", Description: "No one-size-fits-all. Everything we deliver is tailored to your business"},
		{Title: "Expert Team", Description: "Certified professionals with years of experience in their domains"},
		{Title: "End-to-End Support", Description: "From ideation to launch and beyond, we're with you every step"},
		{Title: "Business Impact", Description: "Solutions designed to deliver measurable growth and efficiency"},
	},
	Projects: []Project{
		{
			Title:    "E-Commerce Platform",
			Subtitle: "Custom Salesforce integration for online retail",
			Summary:  "Built a comprehensive e-commerce solution with Salesforce backend, handling 10K+ daily transactions.",
			Tags:     []string{"Salesforce", "React", "API Integration"},
		},
		{
			Title:    "Healthcare Mobile App",
			Subtitle: "Patient management system for iOS & Android",
			Summary:  "Developed a secure mobile app for patient records, appointments, and telemedicine consultations.",
			Tags:     []string{"React Native", "Healthcare", "HIPAA Compliant"},
		},
		{
			Title:    "Corporate Website",
			Subtitle: "Modern web presence for Fortune 500 company",
			Summary:  "Redesigned corporate website with focus on performance, accessibility, and user experience.",
			Tags:     []string{"Next.js", "SEO", "Analytics"},
		},
	},
	Technologies: []string{
		"Salesforce", "React", "React Native", "Node.js", "Python", "MongoDB",
		"AWS", "TypeScript", "GraphQL", "Docker", "Kubernetes", "Next.js",
	},
	FAQs: []FAQ{
		{
			Question: "What services does Origem provide?",
			Answer: "We specialize in three main areas: Salesforce services (customization, integration, and consulting), " +
				"Mobile App Development (iOS and Android), and Web Development (custom websites and web applications).",
		},
		{
			Question: "How long does a typical project take?",
			Answer: "Project timelines vary depending on complexity and scope. A simple website might take 4-6 weeks, " +
				"while a complex Salesforce implementation or mobile app could take 3-6 months.",
		},
		{
			Question: "Do you provide post-launch support?",
			Answer: "Yes! We offer comprehensive post-launch support and maintenance packages, including bug fixes, " +
				"updates, performance monitoring, and feature enhancements.",
		},
		{
			Question: "What is your pricing model?",
			Answer: "We offer fixed-price projects, time and materials, and retainer arrangements. " +
				"Contact us for a customized quote.",
		},
		{
			Question: "Can you work with our existing systems?",
			Answer: "Absolutely! We integrate with existing Salesforce setups, legacy databases, and third-party APIs " +
				"without disrupting your operations.",
		},
	},
	PhoneHref:    "tel:+918983609962",
	PhoneDisplay: "(+91) 89836 09962",
	Tagline:      "Transforming ideas into reality through innovative technology solutions.",
	Copyright:    "Origem Consulting. All rights reserved.",
}
