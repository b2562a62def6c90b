// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the terminal's brain: the scrollback buffer, the
// command interpreter and the navigation state machine.
package session

import (
	"context"
	"strconv"
	"strings"

	"github.com/joshua-lossner/lossner-term/internal/util"
)

// BootMessages are revealed one at a time before the first main menu.
var BootMessages = []string{
	"INITIALIZING TERMINAL INTERFACE...",
	`AI ASSISTANT "ALEX" LOADED AND READY`,
}

// Taglines cycle under the banner on a timer.
var Taglines = []string{
	"SOFTWARE ENGINEER | SYSTEM ARCHITECT | TECH INNOVATOR",
	"BUILDING THE FUTURE, ONE COMMIT AT A TIME",
	"CRAFTING ELEGANT SOLUTIONS TO COMPLEX PROBLEMS",
	"TURNING IDEAS INTO SCALABLE REALITY",
}

const asciiBanner = `
██╗      ██████╗ ███████╗███████╗███╗   ██╗███████╗██████╗
██║     ██╔═══██╗██╔════╝██╔════╝████╗  ██║██╔════╝██╔══██╗
██║     ██║   ██║███████╗███████╗██╔██╗ ██║█████╗  ██████╔╝
██║     ██║   ██║╚════██║╚════██║██║╚██╗██║██╔══╝  ██╔══██╗
███████╗╚██████╔╝███████║███████║██║ ╚████║███████╗██║  ██║
╚══════╝ ╚═════╝ ╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝╚═╝  ╚═╝`

// AppendBoot adds one boot message to the scrollback.
func (c *Controller) AppendBoot(msg string) {
	c.append(Line{Text: msg, Kind: KindProcessing})
}

// Tagline returns the tagline currently under the banner.
func (c *Controller) Tagline() string {
	return Taglines[c.taglineIdx]
}

// AdvanceTagline rotates to the next tagline, updating any tagline line
// already on screen in place.
func (c *Controller) AdvanceTagline() {
	c.taglineIdx = (c.taglineIdx + 1) % len(Taglines)
	for i := range c.lines {
		if c.lines[i].Kind == KindTagline {
			c.lines[i].Text = c.Tagline()
		}
	}
}

// banner draws the framed LOSSNER header with the current tagline.
func (c *Controller) banner() {
	c.append(
		plain(""),
		Line{Text: util.Rule('═'), Kind: KindSeparator},
		plain(""),
		Line{Text: asciiBanner, Kind: KindASCIIArt},
		plain(""),
		Line{Text: c.Tagline(), Kind: KindTagline},
		plain(""),
		Line{Text: util.Rule('═'), Kind: KindSeparator},
		plain(""),
	)
}

// =============================================================================
// SCREENS
// =============================================================================
//
// Every screen rebuilds the scrollback from scratch: banner, bordered
// header, body, footer hint.

// ShowMainMenu renders the top-level menu. Exported so frontends can
// draw the first screen after boot.
func (c *Controller) ShowMainMenu() {
	c.showMainMenu()
}

func (c *Controller) showMainMenu() {
	c.clearScrollback()
	c.banner()
	c.append(
		plain(util.Border("MAIN MENU", '━')),
		plain(""),
		Line{Text: "1. Experience - Professional work history", Kind: KindNormal, Command: "1"},
		Line{Text: "2. Skills - Technical expertise & proficiencies", Kind: KindNormal, Command: "2"},
		Line{Text: "3. Projects - Notable work & contributions", Kind: KindNormal, Command: "3"},
		Line{Text: "4. Education - Academic background & certifications", Kind: KindNormal, Command: "4"},
		Line{Text: "5. Journal - Thoughts on tech and career", Kind: KindNormal, Command: "5"},
		Line{Text: "6. About - Personal introduction", Kind: KindNormal, Command: "6"},
		plain(""),
		plain(util.Rule('━')),
		plain(""),
		Line{Text: `Type a number above, "help" for commands, or ask Alex a question.`, Kind: KindProcessing},
		plain(""),
	)
	c.needsDivider = true
}

func (c *Controller) showHelp(record bool) {
	if record {
		c.push(view{menu: MenuHelp})
	}
	c.clearScrollback()
	c.banner()
	c.append(
		plain(util.Border("AVAILABLE COMMANDS", '━')),
		plain(""),
		plain("/menu     - Return to main menu"),
		plain("/help     - Display available commands"),
		plain("/contact  - View contact information"),
		plain("/download - Download resume as PDF"),
		plain("/github   - Visit GitHub profile"),
		plain("/linkedin - Visit LinkedIn profile"),
		plain("/voice    - Toggle audio output for Alex responses"),
		plain("/history  - Show recent conversations with Alex"),
		plain("/clear    - Clear terminal screen"),
		plain(""),
		plain(util.Border("AI ASSISTANT", '━')),
		plain(""),
		Line{Text: "Ask Alex anything about:", Kind: KindProcessing},
		plain("• Career advice and tech industry insights"),
		plain("• Programming and system architecture"),
		plain("• Joshua's experience and background"),
		plain("• Project ideas and learning paths"),
		plain(""),
		Line{Text: "Just type your question naturally!", Kind: KindProcessing},
		plain(""),
		Line{Text: util.Rule('━'), Kind: KindSeparator},
		plain(""),
		Line{Text: "Type commands, menu numbers, or ask Alex a question.", Kind: KindProcessing},
		plain(""),
	)
}

func (c *Controller) showContact(record bool) {
	if record {
		c.push(view{menu: MenuContact})
	}
	c.clearScrollback()
	c.banner()
	c.append(
		plain(util.Border("CONTACT INFORMATION", '━')),
		plain(""),
		plain("Email:    joshua@lossner.tech"),
		plain("LinkedIn: linkedin.com/in/joshua-lossner"),
		plain("GitHub:   github.com/joshua-lossner"),
		plain("Location: San Francisco, CA"),
		plain(""),
		Line{Text: "Feel free to reach out for opportunities or collaborations!", Kind: KindProcessing},
		plain(""),
		Line{Text: util.Rule('━'), Kind: KindSeparator},
		plain(""),
		Line{Text: "Type /menu to return to main menu.", Kind: KindProcessing},
		plain(""),
	)
}

func (c *Controller) showDirectory(ctx context.Context, dir string, record bool) {
	if record {
		c.push(view{menu: MenuDirectory, directory: dir})
	}
	c.clearScrollback()
	c.banner()
	c.append(
		Line{Text: util.Border(strings.ToUpper(dir), '━'), Kind: KindMenuHeader},
		plain(""),
	)

	files, err := c.content.ListFiles(ctx, dir)
	switch {
	case err != nil:
		c.dirFiles = nil
		c.append(Line{Text: "Error loading content.", Kind: KindError})
	case len(files) == 0:
		c.dirFiles = nil
		c.append(Line{Text: "No content available.", Kind: KindProcessing})
	default:
		c.dirFiles = files
		for i, f := range files {
			text := strconv.Itoa(i+1) + ". " + f.Title
			if company := f.Metadata["company"]; company != "" {
				text += " - " + company
			}
			if period := f.Metadata["period"]; period != "" {
				text += " (" + period + ")"
			}
			c.append(Line{Text: text, Kind: KindNormal, Command: strconv.Itoa(i + 1)})
		}
	}

	c.append(
		plain(""),
		Line{Text: util.Rule('━'), Kind: KindSeparator},
		plain(""),
		Line{Text: "Type a number to view content or /menu to return.", Kind: KindProcessing},
		plain(""),
	)
}

func (c *Controller) showFile(ctx context.Context, dir, filename string, record bool) {
	if record {
		c.push(view{menu: MenuDetail, directory: dir, filename: filename})
	}
	c.clearScrollback()

	file, err := c.content.GetFile(ctx, dir, filename)
	if err != nil {
		c.banner()
		c.append(Line{Text: "Content not available.", Kind: KindError})
		return
	}

	c.banner()
	c.append(
		plain(util.Border(strings.ToUpper(file.Title), '━')),
		plain(""),
	)

	hadMeta := false
	for _, field := range []struct{ key, label string }{
		{"company", "Company"},
		{"period", "Period"},
		{"institution", "Institution"},
		{"location", "Location"},
	} {
		if v := file.Metadata[field.key]; v != "" {
			c.append(Line{Text: "**" + field.label + ":** " + v, Kind: KindMarkdown, Markdown: true})
			hadMeta = true
		}
	}
	if hadMeta {
		c.append(plain(""))
	}

	c.append(
		Line{Text: file.Content, Kind: KindMarkdown, Markdown: true},
		plain(""),
		Line{Text: util.Rule('━'), Kind: KindSeparator},
		plain(""),
		Line{Text: "Type /menu to return or x to go back.", Kind: KindProcessing},
		plain(""),
	)
}
