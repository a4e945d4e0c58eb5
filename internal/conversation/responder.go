// Package conversation produces canned assistant replies for the chat
// surface. Intent detection is keyword-based and the reply for an intent is
// picked from a fixed template set, so the only nondeterminism is the
// injected random source.
package conversation

import (
	"math/rand"
	"strings"
)

// Intent labels the recognized conversation intents.
type Intent string

const (
	IntentTaskCreation    Intent = "task-creation"
	IntentPriorityBrief   Intent = "priority-briefing"
	IntentStatusUpdate    Intent = "status-update"
	IntentProjectSetup    Intent = "project-setup"
	IntentGeneral         Intent = "general"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

// intentRules is evaluated in order; the first intent with a keyword hit
// wins. Task creation outranks briefing so "create a task for today" lands
// on the task path even though "today" is a briefing keyword.
var intentRules = []intentRule{
	{IntentTaskCreation, []string{"task", "todo", "need to", "should", "must", "create", "add", "remind", "schedule", "assign", "deadline"}},
	{IntentPriorityBrief, []string{"priority", "priorities", "briefing", "important", "urgent", "today", "focus", "daily", "morning"}},
	{IntentStatusUpdate, []string{"status", "update", "progress", "report", "client", "project update", "how is", "where are we"}},
	{IntentProjectSetup, []string{"new project", "setup", "create project", "start project", "project planning", "initiate", "begin project"}},
}

var responseTemplates = map[Intent][]string{
	IntentTaskCreation: {
		"I've identified actionable tasks from your message. Want me to create them and assign team members based on availability? I can also set up dependencies and deadlines from your project timeline.",
		"I can turn that into actionable tasks. I'd split it into a main deliverable plus sub-tasks with estimates and due dates. Should I go ahead and create these with automatic assignments?",
		"Here's how I'd organize those action items: each gets an owner, an estimate, and a due date, wired into your existing project workflows. Ready to proceed?",
	},
	IntentPriorityBrief: {
		"**Priority briefing:** your top items today are the client presentation prep, the launch testing, and the pending reviews. Two quick wins are available in under 30 minutes each. Recommendation: block the afternoon for presentation prep and delegate the quick wins.",
		"**Daily focus:** projects are largely on track, team utilization is in the optimal band, and there are no overdue critical tasks. Prioritize the deck review this morning and the onboarding call this afternoon.",
	},
	IntentStatusUpdate: {
		"**Project status:** roughly three quarters complete. Strategy, concepts, and guidelines are done; application designs are in flight. On track for the planned delivery date, with a client review session scheduled next. Want me to format this for the client?",
		"**Weekly update:** ahead of schedule. Core systems are finished, integrations are in progress, and user testing starts Monday. Budget is well within projections. Ready to send to the client - email or Slack format?",
	},
	IntentProjectSetup: {
		"Let's set up the new project. I'd structure it as discovery and strategy first, then the design phase, then application and delivery, with team allocations per phase. Does that structure work, or should I adjust phases, timeline, or assignments?",
		"For this setup I'd recommend three phases: audit and planning, design and prototyping, then development and launch, with milestones at each phase boundary. Ready to move forward, or would you like to modify anything?",
	},
	IntentGeneral: {
		"I'm here to help you manage your projects and tasks! I can assist with creating tasks from your messages, generating priority briefings, providing status updates, or setting up new projects. What would you like to work on?",
		"Thanks for that context! I can help you turn conversations and ideas into actionable tasks, analyze your daily priorities, create client status reports, or guide you through project setup. How can I assist you today?",
		"I specialize in helping teams manage their workflow through natural conversation. Whether you need task management, priority analysis, status reporting, or project planning - I'm ready to help!",
	},
}

// Responder picks canned replies. Construct with NewResponder; pass a seeded
// source for reproducible output.
type Responder struct {
	rng *rand.Rand
}

// NewResponder returns a Responder drawing from rng. rng must not be nil.
func NewResponder(rng *rand.Rand) *Responder {
	return &Responder{rng: rng}
}

// DetectIntent classifies a message by its first matching keyword set.
func DetectIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.intent
			}
		}
	}
	return IntentGeneral
}

// Respond returns a reply for the message's detected intent.
func (r *Responder) Respond(message string) string {
	templates := responseTemplates[DetectIntent(message)]
	return templates[r.rng.Intn(len(templates))]
}
