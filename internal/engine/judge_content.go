package engine

import "github.com/ressKim-io/idea-arena/internal/domain/service"

type feedbackPools struct {
	originality []string
	logic       []string
	expression  []string
}

var winnerFeedback = feedbackPools{
	originality: []string{
		"A fresh take that goes well beyond the obvious answer.",
		"The core idea is inventive and combines concepts in a surprising way.",
		"Shows real imagination with several novel details.",
	},
	logic: []string{
		"The plan is practical and addresses the main constraints.",
		"Well reasoned, with steps that fit together coherently.",
		"Feasible and thoughtfully structured from start to finish.",
	},
	expression: []string{
		"Clear, vivid writing that makes the idea easy to picture.",
		"Engaging and well organized, with a strong flow.",
		"Communicates the concept confidently and concisely.",
	},
}

var loserFeedback = feedbackPools{
	originality: []string{
		"Builds on familiar ideas with a few creative touches.",
		"The concept is reasonable but close to existing solutions.",
		"Some interesting moments, though the core idea feels expected.",
	},
	logic: []string{
		"Generally workable, though some practical details are missing.",
		"The reasoning holds up but leaves key challenges unaddressed.",
		"A plausible approach that needs more thought on execution.",
	},
	expression: []string{
		"Understandable, but the explanation could be tighter.",
		"The main points come across, with room for more clarity.",
		"Readable overall, though the structure wanders at times.",
	},
}

var challengerWinCommentary = []string{
	"Your solution stood out for its creativity and clear reasoning, edging out the opponent's more conventional approach.",
	"A strong showing: your idea was more original and better communicated, earning you the win.",
	"Both entries had merit, but your solution's inventive angle and practical detail carried the day.",
}

var opponentWinCommentary = []string{
	"The opponent's solution was more fully developed and practical, giving it the edge this round.",
	"Your idea showed promise, but the opponent communicated a more complete and coherent plan.",
	"A close contest, with the opponent winning on feasibility and clarity of expression.",
}

func commentaryFor(winner service.Side) []string {
	if winner == service.SideOpponent {
		return opponentWinCommentary
	}
	return challengerWinCommentary
}
