package service

import (
	"fmt"
	"strings"

	"contentcraft/internal/domain/models"
)

const generateSystemPrompt = "You are a professional content writer producing structured documents and presentations."

// buildSectionPrompt builds the generation prompt for one section. Earlier
// sections that already have content are passed as context so later sections
// build on them instead of repeating them.
func buildSectionPrompt(project *models.Project, section *models.Section, total int, prior []models.Section) string {
	var sb strings.Builder

	if project.Kind == models.KindSlideshow {
		sb.WriteString("Create content for a presentation slide.\n\n")
		fmt.Fprintf(&sb, "Presentation Topic: %s\n", project.Topic)
		fmt.Fprintf(&sb, "Slide Title: %s\n", section.Title)
		fmt.Fprintf(&sb, "Slide Number: %d of %d\n", section.OrderIndex+1, total)
	} else {
		sb.WriteString("Write detailed, professional content for a document section.\n\n")
		fmt.Fprintf(&sb, "Document Topic: %s\n", project.Topic)
		fmt.Fprintf(&sb, "Section Title: %s\n", section.Title)
		fmt.Fprintf(&sb, "Section Number: %d of %d\n", section.OrderIndex+1, total)
	}

	if ctx := priorContext(prior); ctx != "" {
		sb.WriteString("\nContent written so far:\n")
		sb.WriteString(ctx)
	}

	if project.Kind == models.KindSlideshow {
		sb.WriteString("\nProvide 3-5 concise bullet points for this slide. Each point should be clear and impactful. Format as a simple bulleted list. Do not include the slide title.")
	} else {
		sb.WriteString("\nProvide comprehensive content (300-500 words) for this section. Focus on being informative, well-structured, and professional. Do not include the section title in your response.")
	}

	return sb.String()
}

// priorContext summarizes already-generated sections for the prompt. Each
// entry is capped so long documents do not blow the context window.
func priorContext(prior []models.Section) string {
	const perSectionCap = 1200

	var sb strings.Builder
	for _, s := range prior {
		if s.Content == nil {
			continue
		}
		content := *s.Content
		if len(content) > perSectionCap {
			content = content[:perSectionCap] + "..."
		}
		fmt.Fprintf(&sb, "\n## %s\n%s\n", s.Title, content)
	}
	return sb.String()
}

// buildRefinePrompt builds the prompt for a single refinement pass
func buildRefinePrompt(project *models.Project, section *models.Section, instruction string) string {
	var sb strings.Builder
	sb.WriteString("You are refining content for a section.\n\n")
	fmt.Fprintf(&sb, "Section Title: %s\n", section.Title)
	fmt.Fprintf(&sb, "Document Topic: %s\n", project.Topic)
	sb.WriteString("Current Content:\n")
	if section.Content != nil {
		sb.WriteString(*section.Content)
	}
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "User Request: %s\n\n", instruction)
	sb.WriteString("Provide the refined version of the content based on the user's request. Return only the refined content, no explanations.")
	return sb.String()
}

// buildOutlinePrompt builds the prompt for outline suggestion
func buildOutlinePrompt(kind models.ProjectKind, topic string) string {
	if kind == models.KindSlideshow {
		return fmt.Sprintf("Generate slide titles for a presentation on: %s\n\nProvide 8-12 slide titles that would make a comprehensive presentation. Include an introduction slide and a conclusion slide. Return only the slide titles, one per line, no numbering.", topic)
	}
	return fmt.Sprintf("Generate a document outline for the following topic: %s\n\nProvide 5-8 section headings that would make a comprehensive, well-structured document. Return only the section headings, one per line, no numbering or additional text.", topic)
}

// parseOutlineItems splits an LLM outline response into clean title lines,
// stripping any bullet or numbering decoration the model added anyway.
func parseOutlineItems(response string) []string {
	items := []string{}
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = strings.TrimSpace(strings.TrimLeft(line, "0123456789."))
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
