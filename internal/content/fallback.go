// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content fetches resume sections from a GitHub repository of
// markdown files and shapes them for display.
package content

import (
	"strings"

	"github.com/joshua-lossner/lossner-term/internal/frontmatter"
)

// =============================================================================
// STATIC FALLBACK DATA
// =============================================================================
//
// Served when the content repository answers 403 or 404. Listings must
// never come back empty just because a token is missing or the repo moved,
// so every section carries a representative sample.

// FallbackDirectories returns the fixed section list.
func FallbackDirectories() []Directory {
	dirs := make([]Directory, len(Directories))
	for i, name := range Directories {
		dirs[i] = Directory{Name: name, Path: "content/" + name}
	}
	return dirs
}

// FallbackItems returns the static listing for a section, already sorted
// by that section's policy. Unknown sections return nil.
func FallbackItems(directory string) []Item {
	src, ok := fallbackListings[strings.ToLower(directory)]
	if !ok {
		return nil
	}

	// Copy so callers can't mutate the shared tables.
	items := make([]Item, len(src))
	for i, it := range src {
		meta := make(map[string]string, len(it.Metadata))
		for k, v := range it.Metadata {
			meta[k] = v
		}
		items[i] = Item{Name: it.Name, Title: it.Title, Order: it.Order, Metadata: meta}
	}
	SortItems(items, directory)
	return items
}

// FallbackFile returns the static body for a file, or a placeholder that
// tells the operator how to point the terminal at a live repository.
func FallbackFile(directory, filename string) *File {
	title := frontmatter.TitleFromFilename(filename)
	meta := map[string]string{}

	if it, ok := findFallbackItem(directory, filename); ok {
		title = it.Title
		for k, v := range it.Metadata {
			meta[k] = v
		}
	}

	body := placeholderBody
	if bodies, ok := fallbackBodies[strings.ToLower(directory)]; ok {
		if b, ok := bodies[filename]; ok {
			body = b
		}
	}

	return &File{
		Title:    title,
		Content:  body,
		Metadata: meta,
		Filename: filename,
	}
}

func findFallbackItem(directory, filename string) (Item, bool) {
	for _, it := range fallbackListings[strings.ToLower(directory)] {
		if it.Name == filename {
			return it, true
		}
	}
	return Item{}, false
}

const placeholderBody = `This entry is built-in sample content. The live version could not be
loaded from the content repository.

To serve your own content, point the terminal at a GitHub repository of
markdown files in ~/.lossner-term/config.toml:

    [content]
    github_owner = "your-username"
    github_repo  = "your-content-repo"

For a private repository, export LOSSNER_GITHUB_TOKEN with a token that
has read access to its contents.`

// fallbackListings is keyed by lowercased section name.
var fallbackListings = map[string][]Item{
	"experience": {
		{
			Name:  "devops-engineer.md",
			Title: "DevOps Engineer",
			Order: 1,
			Metadata: map[string]string{
				"company": "Tech Innovations Inc.",
				"period":  "2021 - Present",
			},
		},
		{
			Name:  "senior-solutions-consultant.md",
			Title: "Senior Solutions Consultant",
			Order: 2,
			Metadata: map[string]string{
				"company": "Digital Solutions Corp",
				"period":  "2018 - 2021",
			},
		},
	},
	"skills": {
		{Name: "languages.md", Title: "Languages", Order: 1, Metadata: map[string]string{}},
		{Name: "backend.md", Title: "Backend", Order: 2, Metadata: map[string]string{}},
		{Name: "databases.md", Title: "Databases", Order: 3, Metadata: map[string]string{}},
		{Name: "cloud-devops.md", Title: "Cloud & DevOps", Order: 4, Metadata: map[string]string{}},
	},
	"projects": {
		{
			Name:  "devflow-cli.md",
			Title: "DevFlow CLI",
			Order: 1,
			Metadata: map[string]string{
				"status":   "In Progress",
				"timeline": "2023 - Present",
			},
		},
		{
			Name:  "cloudmart.md",
			Title: "CloudMart E-commerce Platform",
			Order: 2,
			Metadata: map[string]string{
				"status":   "Completed",
				"timeline": "2021 - 2023",
			},
		},
		{
			Name:  "datastream.md",
			Title: "DataStream Analytics",
			Order: 3,
			Metadata: map[string]string{
				"status":   "Completed",
				"timeline": "2019 - 2021",
			},
		},
	},
	"education": {
		{
			Name:  "stanford.md",
			Title: "Master of Science in Computer Science",
			Order: 1,
			Metadata: map[string]string{
				"institution": "Stanford University",
				"period":      "2013 - 2015",
			},
		},
		{
			Name:  "certifications.md",
			Title: "Professional Certifications",
			Order: 2,
			Metadata: map[string]string{
				"period": "2016 - 2022",
			},
		},
	},
	"journal": {
		{Name: "on-terminal-uis.md", Title: "On Terminal UIs", Order: 1, Metadata: map[string]string{"date": "2024-11"}},
		{Name: "notes-on-go.md", Title: "Notes On Go", Order: 2, Metadata: map[string]string{"date": "2024-06"}},
	},
	"about": {
		{Name: "about.md", Title: "About", Order: 1, Metadata: map[string]string{}},
	},
}

// fallbackBodies carries real sample bodies for the entries above,
// keyed like fallbackListings.
var fallbackBodies = map[string]map[string]string{
	"experience": {
		"devops-engineer.md": `- Own the CI/CD platform for a 40-service deployment across three regions
- Cut median deploy time from 25 minutes to 6 through pipeline caching
- Introduced infrastructure-as-code for the full stack (Terraform, Helm)
- On-call lead for the platform team, drove MTTR down by half

**Technologies:** Go, Kubernetes, Terraform, AWS, GitHub Actions`,
		"senior-solutions-consultant.md": `- Designed and delivered integration projects for enterprise clients
- Built real-time data pipelines moving 1B+ events daily
- Led frontend modernization efforts and API design reviews
- Primary technical contact for the three largest accounts

**Technologies:** Python, TypeScript, Docker, PostgreSQL, Kafka`,
	},
	"skills": {
		"languages.md": `**Expert:** TypeScript, JavaScript, Python
**Advanced:** Go, Java, SQL
**Intermediate:** Rust, C++`,
		"backend.md": `**Node.js:** Express, NestJS, Fastify
**Python:** Django, FastAPI, Flask
**APIs:** REST, GraphQL, gRPC, WebSockets
**Message Queues:** RabbitMQ, Kafka, Redis Pub/Sub`,
		"databases.md": `**SQL:** PostgreSQL, MySQL, SQLite
**NoSQL:** MongoDB, DynamoDB, Cassandra
**Cache:** Redis, Memcached
**Search:** Elasticsearch, OpenSearch`,
		"cloud-devops.md": `**AWS:** EC2, S3, Lambda, RDS, ECS, CloudFormation
**Containers:** Docker, Kubernetes, Helm
**CI/CD:** GitHub Actions, GitLab CI, Jenkins
**IaC:** Terraform, Pulumi, CDK`,
	},
	"projects": {
		"devflow-cli.md": `**Open Source Developer Tool** | 10k+ GitHub Stars

A command-line tool that automates common development workflows and
integrates with popular development tools. Built with Go for performance
and extensibility.

- Reduced developer context switching by 40%
- Integrated with 15+ popular development tools
- Active community with 100+ contributors
- **Tech:** Go, Cobra, SQLite, GitHub API`,
		"cloudmart.md": `**Scalable Marketplace** | $50M+ Transactions

Enterprise e-commerce platform handling high-volume transactions with
real-time inventory management and fraud detection.

- Achieved 99.9% uptime over 2 years
- Handled Black Friday traffic at 10x normal load
- ML-based fraud detection reduced chargebacks by 70%
- **Tech:** React, Node.js, PostgreSQL, Redis, AWS`,
		"datastream.md": `**Real-time Data Visualization** | 100M+ Events/Day

Streaming analytics platform with customizable dashboards for
Fortune 500 clients.

- Sub-second latency for real-time updates
- Custom query language for non-technical users
- White-label solution deployed for 20+ enterprises
- **Tech:** TypeScript, D3.js, WebSockets, Kafka, ClickHouse`,
	},
	"education": {
		"stanford.md": `**Stanford University** | 2013 - 2015 | GPA: 3.9/4.0

Focus: Distributed Systems and Machine Learning

- Research on distributed consensus algorithms published in ACM
- Teaching Assistant for CS244B: Distributed Systems
- Graduate Fellowship recipient`,
		"certifications.md": `- AWS Certified Solutions Architect - Professional
- Certified Kubernetes Administrator (CKA)
- HashiCorp Certified: Terraform Associate`,
	},
	"journal": {
		"on-terminal-uis.md": `There is something honest about a terminal. No layout tricks, no modal
dialogs, just a stream of text and a prompt. This site is an experiment
in how much of a portfolio can live comfortably in that shape.`,
		"notes-on-go.md": `Collected notes from moving a mid-size service to Go: where the standard
library carried more weight than expected, and where it did not.`,
	},
	"about": {
		"about.md": `# About Joshua Lossner

Senior Software Engineer with 10+ years of experience building scalable
systems and leading technical teams. Passionate about clean code, system
architecture, and creating elegant solutions to complex problems.

## Core Competencies
- Full-stack development with modern frameworks
- Cloud architecture and DevOps practices
- Team leadership and mentorship
- Open source contribution

## What I Do
I specialize in building distributed systems that scale. Whether it's
architecting microservices, optimizing database performance, or
implementing real-time data pipelines, I focus on robust solutions that
stand the test of time.

## Philosophy
I believe in writing code that humans can understand, systems that
operators can reason about, and documentation that actually helps. The
best technology decisions balance innovation with pragmatism.`,
	},
}
