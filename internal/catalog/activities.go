package catalog

import "example.com/wellness/internal/domain"

var defaultActivities = []ActivityEntry{
	{
		Activity:     domain.Activity{Name: "Crossword", Description: "Stimulate your brain with a crossword puzzle."},
		StartMessage: "Opening crossword puzzle application...",
	},
	{
		Activity:     domain.Activity{Name: "Sudoku", Description: "Challenge your logic with Sudoku."},
		StartMessage: "Opening Sudoku application...",
	},
	{
		Activity:     domain.Activity{Name: "Jigsaw Puzzles", Description: "Enhance visual-spatial skills with jigsaw puzzles."},
		StartMessage: "Opening jigsaw puzzle application...",
	},
	{
		Activity:     domain.Activity{Name: "Memory Games", Description: "Improve cognitive abilities with memory games."},
		StartMessage: "Opening memory game application...",
	},
	{
		Activity:     domain.Activity{Name: "Trivia Quizzes", Description: "Test your knowledge with trivia quizzes."},
		StartMessage: "Opening trivia quiz application...",
	},
	{
		Activity:     domain.Activity{Name: "Brain Teasers", Description: "Exercise your brain with creative brain teasers."},
		StartMessage: "Opening brain teaser application...",
	},
	{
		Activity:     domain.Activity{Name: "Board Games", Description: "Enjoy strategic thinking with board games."},
		StartMessage: "Opening board game application...",
	},
	{
		Activity:     domain.Activity{Name: "Painting or Drawing", Description: "Enhance motor skills with painting or drawing."},
		StartMessage: "Opening painting or drawing application...",
	},
}
