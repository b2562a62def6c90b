// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the terminal's brain: the scrollback buffer, the
// command interpreter and the navigation state machine.
package session

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/joshua-lossner/lossner-term/internal/assistant"
	"github.com/joshua-lossner/lossner-term/internal/content"
	"github.com/joshua-lossner/lossner-term/internal/speech"
	"github.com/joshua-lossner/lossner-term/internal/util"
)

// Profile links opened by the side-effect commands.
const (
	GitHubURL   = "https://github.com/joshua-lossner"
	LinkedInURL = "https://linkedin.com/in/joshua-lossner"
)

// =============================================================================
// NAVIGATION STATE
// =============================================================================

// Menu identifies which screen the terminal is showing.
type Menu string

const (
	MenuMain      Menu = "main"
	MenuHelp      Menu = "help"
	MenuContact   Menu = "contact"
	MenuDirectory Menu = "directory"
	MenuDetail    Menu = "detail"
)

// view is one entry of the navigation stack: enough state to replay the
// screen it stands for.
type view struct {
	menu      Menu
	directory string
	filename  string
}

// =============================================================================
// EXCHANGE LOG
// =============================================================================

// Exchange is one recorded question and answer.
type Exchange struct {
	Question string
	Answer   string
	At       time.Time
}

// ExchangeLog records Alex conversations for the /history command.
// Implementations must tolerate concurrent use.
type ExchangeLog interface {
	Record(ctx context.Context, question, answer string) error
	Recent(ctx context.Context, limit int) ([]Exchange, error)
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Result carries side effects only a frontend can perform.
type Result struct {
	// Quit asks the frontend to shut down.
	Quit bool

	// OpenURL asks the frontend to open a link in the browser.
	OpenURL string

	// Audio is a data URI to play aloud, set when voice output is on
	// and synthesis succeeded.
	Audio string
}

// Controller owns all session state. Not safe for concurrent use; the
// frontend serializes commands through its processing flag.
type Controller struct {
	content *content.Service
	alex    *assistant.Assistant
	voice   *speech.Client
	log     ExchangeLog

	lines        []Line
	stack        []view
	dirFiles     []content.Item
	audioOn      bool
	playback     bool
	needsDivider bool
	taglineIdx   int
}

// NewController creates a session rooted at the main menu. voice and log
// may be nil.
func NewController(svc *content.Service, alex *assistant.Assistant, voice *speech.Client, log ExchangeLog) *Controller {
	return &Controller{
		content: svc,
		alex:    alex,
		voice:   voice,
		log:     log,
		stack:   []view{{menu: MenuMain}},
	}
}

// Lines returns the scrollback buffer.
func (c *Controller) Lines() []Line {
	return c.lines
}

// Menu returns the currently displayed screen, i.e. the stack top.
func (c *Controller) Menu() Menu {
	return c.stack[len(c.stack)-1].menu
}

// Directory returns the section of the current listing or detail view.
func (c *Controller) Directory() string {
	return c.stack[len(c.stack)-1].directory
}

// AudioEnabled reports whether /voice output is on.
func (c *Controller) AudioEnabled() bool {
	return c.audioOn
}

// SetAudioEnabled sets the initial /voice state from configuration.
func (c *Controller) SetAudioEnabled(on bool) {
	c.audioOn = on
}

// SetPlayback declares whether the frontend can play synthesized audio.
// When false, /voice still toggles but no synthesis request is made;
// there is no point paying for audio nothing can play.
func (c *Controller) SetPlayback(on bool) {
	c.playback = on
}

func (c *Controller) append(lines ...Line) {
	c.lines = append(c.lines, lines...)
}

func (c *Controller) clearScrollback() {
	c.lines = c.lines[:0]
	c.needsDivider = false
}

func (c *Controller) push(v view) {
	c.stack = append(c.stack, v)
}

// =============================================================================
// COMMAND INTERPRETER
// =============================================================================

// commandAliases maps every accepted spelling to its canonical command.
var commandAliases = map[string]string{
	"/menu": "menu", "menu": "menu", "m": "menu",
	"x": "back", "/back": "back", "back": "back",
	"/help": "help", "help": "help", "h": "help",
	"/about": "about", "about": "about",
	"/experience": "experience", "experience": "experience",
	"/skills": "skills", "skills": "skills",
	"/projects": "projects", "projects": "projects",
	"/education": "education", "education": "education",
	"/journal": "journal", "journal": "journal",
	"/contact": "contact", "contact": "contact",
	"/github":   "github",
	"/linkedin": "linkedin",
	"/download": "download",
	"/voice": "voice", "voice": "voice",
	"/clear": "clear", "clear": "clear",
	"/history": "history", "history": "history",
	"exit": "exit",
}

// sectionCommands maps canonical section commands to their directory.
var sectionCommands = map[string]string{
	"experience": "Experience",
	"skills":     "Skills",
	"projects":   "Projects",
	"education":  "Education",
	"journal":    "Journal",
}

// Execute runs one submitted input: echoes it into the scrollback, then
// interprets it as a menu selection, a command, or a question for Alex.
func (c *Controller) Execute(ctx context.Context, input string) Result {
	input = strings.TrimSpace(input)
	if input == "" {
		return Result{}
	}

	if c.needsDivider {
		c.append(Line{Text: util.Rule('─'), Kind: KindSeparator})
		c.needsDivider = false
	}
	c.append(Line{Text: "> " + input, Kind: KindUserInput})

	return c.dispatch(ctx, input)
}

func (c *Controller) dispatch(ctx context.Context, input string) Result {
	cmd := strings.ToLower(input)

	// Numbered selection at the main menu.
	if c.Menu() == MenuMain {
		if n, err := strconv.Atoi(cmd); err == nil && n >= 1 && n <= len(content.Directories) {
			c.openSection(ctx, content.Directories[n-1], true)
			return Result{}
		}
	}

	// Numbered selection in a directory listing. Out of range is a
	// no-op, not an error.
	if c.Menu() == MenuDirectory && isDigits(cmd) {
		if n, err := strconv.Atoi(cmd); err == nil && n >= 1 && n <= len(c.dirFiles) {
			c.showFile(ctx, c.Directory(), c.dirFiles[n-1].Name, true)
		}
		return Result{}
	}

	fields := strings.Fields(cmd)
	name := commandAliases[fields[0]]
	if name == "" || len(fields) > 1 && name != "history" {
		// Anything unrecognized is a question for Alex.
		return c.ask(ctx, input)
	}

	switch name {
	case "menu":
		c.resetToMain(ctx)
	case "back":
		c.back(ctx)
	case "help":
		c.showHelp(true)
	case "contact":
		c.showContact(true)
	case "about":
		c.showFile(ctx, "About", "about.md", true)
	case "experience", "skills", "projects", "education", "journal":
		c.showDirectory(ctx, sectionCommands[name], true)
	case "github":
		c.append(Line{Text: "Opening GitHub profile...", Kind: KindProcessing})
		return Result{OpenURL: GitHubURL}
	case "linkedin":
		c.append(Line{Text: "Opening LinkedIn profile...", Kind: KindProcessing})
		return Result{OpenURL: LinkedInURL}
	case "download":
		c.append(Line{Text: "Resume download feature coming soon...", Kind: KindProcessing})
	case "voice":
		c.audioOn = !c.audioOn
		if c.audioOn {
			c.append(Line{Text: "Audio output enabled. Alex will now speak responses aloud.", Kind: KindProcessing})
		} else {
			c.append(Line{Text: "Audio output disabled.", Kind: KindProcessing})
		}
	case "clear":
		c.clearScrollback()
	case "history":
		c.showHistory(ctx, historyLimit(fields))
	case "exit":
		c.append(Line{Text: "Thank you for visiting. Goodbye!", Kind: KindProcessing})
		return Result{Quit: true}
	}
	return Result{}
}

// openSection handles a main-menu pick: About opens its detail view,
// every other section opens a listing.
func (c *Controller) openSection(ctx context.Context, dir string, record bool) {
	if dir == "About" {
		c.showFile(ctx, "About", "about.md", record)
		return
	}
	c.showDirectory(ctx, dir, record)
}

// resetToMain collapses the history stack back to its bottom entry.
func (c *Controller) resetToMain(ctx context.Context) {
	c.stack = c.stack[:1]
	c.showMainMenu()
}

// back pops the current view and replays the one beneath it. At the
// bottom of the stack it just redraws the main menu.
func (c *Controller) back(ctx context.Context) {
	if len(c.stack) > 1 {
		c.stack = c.stack[:len(c.stack)-1]
	}
	c.replay(ctx, c.stack[len(c.stack)-1])
}

// replay re-renders a view without touching history.
func (c *Controller) replay(ctx context.Context, v view) {
	switch v.menu {
	case MenuMain:
		c.showMainMenu()
	case MenuHelp:
		c.showHelp(false)
	case MenuContact:
		c.showContact(false)
	case MenuDirectory:
		c.showDirectory(ctx, v.directory, false)
	case MenuDetail:
		c.showFile(ctx, v.directory, v.filename, false)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func historyLimit(fields []string) int {
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
			return n
		}
	}
	return 10
}

// =============================================================================
// ASSISTANT PATH
// =============================================================================

var aiSeparator = strings.Repeat("─", 40)

// ask forwards unrecognized input to Alex. Navigation state is untouched;
// the reply grows the scrollback as an indented block between separators.
func (c *Controller) ask(ctx context.Context, question string) Result {
	reply, err := c.alex.Reply(ctx, question)
	if err != nil || reply == "" {
		reply = assistant.OfflineMessage
	}

	if c.log != nil {
		// Best effort; a broken log must never block the conversation.
		_ = c.log.Record(ctx, question, reply)
	}

	c.append(Line{Text: aiSeparator, Kind: KindSeparator})
	for _, line := range strings.Split(reply, "\n") {
		c.append(Line{Text: "    " + line, Kind: KindAIResponse})
	}
	c.append(Line{Text: aiSeparator, Kind: KindSeparator})
	c.append(plain(""))

	var audio string
	if c.audioOn && c.playback && c.voice.Configured() && len(reply) < speech.MaxSpokenLength {
		if uri, err := c.voice.Synthesize(ctx, reply); err == nil {
			audio = uri
		}
	}
	return Result{Audio: audio}
}

// showHistory appends recent exchanges to the scrollback. Like ask, this
// is not a navigation.
func (c *Controller) showHistory(ctx context.Context, limit int) {
	if c.log == nil {
		c.append(Line{Text: "Conversation history is not available.", Kind: KindProcessing})
		return
	}

	exchanges, err := c.log.Recent(ctx, limit)
	if err != nil {
		c.append(Line{Text: "Could not load conversation history.", Kind: KindError})
		return
	}
	if len(exchanges) == 0 {
		c.append(Line{Text: "No conversations recorded yet.", Kind: KindProcessing})
		return
	}

	c.append(Line{Text: util.Border("RECENT CONVERSATIONS", '━'), Kind: KindNormal}, plain(""))
	for _, ex := range exchanges {
		c.append(Line{Text: ex.At.Format("2006-01-02 15:04") + "  > " + ex.Question, Kind: KindNormal})
		c.append(Line{Text: "    " + util.TruncateRunes(firstLine(ex.Answer), 72), Kind: KindAIResponse})
	}
	c.append(plain(""))
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
