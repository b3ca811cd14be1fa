package seed

import "quiz-backend/internal/domain"

// Questions returns the sample catalog: ten questions each for Programming,
// General Knowledge and Science, four choices apiece. IDs are left zero.
func Questions() []domain.Question {
	out := make([]domain.Question, len(catalog))
	for i, q := range catalog {
		q.IsActive = true
		q.Choices = append([]domain.Choice(nil), q.Choices...)
		out[i] = q
	}
	return out
}

func right(text string) domain.Choice { return domain.Choice{Text: text, IsCorrect: true} }
func wrong(text string) domain.Choice { return domain.Choice{Text: text} }

var catalog = []domain.Question{
	{
		Text:       "What does HTML stand for?",
		Category:   "Programming",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			right("HyperText Markup Language"),
			wrong("High Tech Modern Language"),
			wrong("Home Tool Markup Language"),
			wrong("Hyperlink and Text Markup Language"),
		},
	},
	{
		Text:       "Which programming language is known for its use in web development?",
		Category:   "Programming",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			wrong("Python"),
			right("JavaScript"),
			wrong("C++"),
			wrong("Java"),
		},
	},
	{
		Text:       "What is the correct way to declare a variable in JavaScript?",
		Category:   "Programming",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			right("var name = \"John\";"),
			wrong("variable name = \"John\";"),
			wrong("v name = \"John\";"),
			wrong("declare name = \"John\";"),
		},
	},
	{
		Text:       "Which CSS property is used to change the text color?",
		Category:   "Programming",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			wrong("text-color"),
			right("color"),
			wrong("font-color"),
			wrong("text-style"),
		},
	},
	{
		Text:       "What does API stand for?",
		Category:   "Programming",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			right("Application Programming Interface"),
			wrong("Advanced Programming Integration"),
			wrong("Automated Program Interface"),
			wrong("Application Process Integration"),
		},
	},
	{
		Text:       "Which method is used to add an element to the end of an array in JavaScript?",
		Category:   "Programming",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("array.add()"),
			right("array.push()"),
			wrong("array.append()"),
			wrong("array.insert()"),
		},
	},
	{
		Text:       "What is the purpose of the \"use strict\" directive in JavaScript?",
		Category:   "Programming",
		Difficulty: domain.DifficultyHard,
		Points:     20,
		Choices: []domain.Choice{
			right("To enable strict mode for better error checking"),
			wrong("To disable all error checking"),
			wrong("To make the code run faster"),
			wrong("To enable experimental features"),
		},
	},
	{
		Text:       "Which HTML tag is used to create a hyperlink?",
		Category:   "Programming",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			wrong("<link>"),
			right("<a>"),
			wrong("<href>"),
			wrong("<url>"),
		},
	},
	{
		Text:       "What does SQL stand for?",
		Category:   "Programming",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			right("Structured Query Language"),
			wrong("Simple Query Language"),
			wrong("Standard Query Language"),
			wrong("System Query Language"),
		},
	},
	{
		Text:       "Which CSS property is used to control the spacing between elements?",
		Category:   "Programming",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("spacing"),
			right("margin"),
			wrong("padding"),
			wrong("gap"),
		},
	},
	{
		Text:       "What is the capital of France?",
		Category:   "General Knowledge",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			wrong("London"),
			wrong("Berlin"),
			right("Paris"),
			wrong("Madrid"),
		},
	},
	{
		Text:       "Which planet is known as the Red Planet?",
		Category:   "General Knowledge",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			wrong("Venus"),
			right("Mars"),
			wrong("Jupiter"),
			wrong("Saturn"),
		},
	},
	{
		Text:       "Who painted the Mona Lisa?",
		Category:   "General Knowledge",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("Vincent van Gogh"),
			wrong("Pablo Picasso"),
			right("Leonardo da Vinci"),
			wrong("Michelangelo"),
		},
	},
	{
		Text:       "What is the largest ocean on Earth?",
		Category:   "General Knowledge",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			wrong("Atlantic Ocean"),
			wrong("Indian Ocean"),
			right("Pacific Ocean"),
			wrong("Arctic Ocean"),
		},
	},
	{
		Text:       "Which year did World War II end?",
		Category:   "General Knowledge",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("1944"),
			right("1945"),
			wrong("1946"),
			wrong("1947"),
		},
	},
	{
		Text:       "What is the chemical symbol for gold?",
		Category:   "General Knowledge",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("Go"),
			wrong("Gd"),
			right("Au"),
			wrong("Ag"),
		},
	},
	{
		Text:       "Which country is known as the Land of the Rising Sun?",
		Category:   "General Knowledge",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			wrong("China"),
			right("Japan"),
			wrong("South Korea"),
			wrong("Thailand"),
		},
	},
	{
		Text:       "What is the smallest prime number?",
		Category:   "General Knowledge",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("0"),
			wrong("1"),
			right("2"),
			wrong("3"),
		},
	},
	{
		Text:       "Which gas makes up most of Earth's atmosphere?",
		Category:   "General Knowledge",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("Oxygen"),
			wrong("Carbon Dioxide"),
			right("Nitrogen"),
			wrong("Hydrogen"),
		},
	},
	{
		Text:       "What is the fastest land animal?",
		Category:   "General Knowledge",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			wrong("Lion"),
			right("Cheetah"),
			wrong("Leopard"),
			wrong("Tiger"),
		},
	},
	{
		Text:       "What is the speed of light in vacuum?",
		Category:   "Science",
		Difficulty: domain.DifficultyHard,
		Points:     20,
		Choices: []domain.Choice{
			right("300,000 km/s"),
			wrong("150,000 km/s"),
			wrong("450,000 km/s"),
			wrong("600,000 km/s"),
		},
	},
	{
		Text:       "What is the chemical formula for water?",
		Category:   "Science",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			right("H2O"),
			wrong("CO2"),
			wrong("NaCl"),
			wrong("O2"),
		},
	},
	{
		Text:       "Which force keeps planets in orbit around the sun?",
		Category:   "Science",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("Magnetic force"),
			right("Gravitational force"),
			wrong("Electric force"),
			wrong("Nuclear force"),
		},
	},
	{
		Text:       "What is the process by which plants make their food?",
		Category:   "Science",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			wrong("Respiration"),
			right("Photosynthesis"),
			wrong("Digestion"),
			wrong("Fermentation"),
		},
	},
	{
		Text:       "What is the atomic number of carbon?",
		Category:   "Science",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			right("6"),
			wrong("12"),
			wrong("8"),
			wrong("14"),
		},
	},
	{
		Text:       "Which type of energy is stored in a battery?",
		Category:   "Science",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("Kinetic energy"),
			wrong("Potential energy"),
			right("Chemical energy"),
			wrong("Thermal energy"),
		},
	},
	{
		Text:       "What is the unit of electric current?",
		Category:   "Science",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("Volt"),
			right("Ampere"),
			wrong("Watt"),
			wrong("Ohm"),
		},
	},
	{
		Text:       "Which gas is responsible for the greenhouse effect?",
		Category:   "Science",
		Difficulty: domain.DifficultyMedium,
		Points:     15,
		Choices: []domain.Choice{
			wrong("Oxygen"),
			wrong("Nitrogen"),
			right("Carbon Dioxide"),
			wrong("Hydrogen"),
		},
	},
	{
		Text:       "What is the hardest natural substance on Earth?",
		Category:   "Science",
		Difficulty: domain.DifficultyEasy,
		Points:     10,
		Choices: []domain.Choice{
			wrong("Gold"),
			wrong("Iron"),
			right("Diamond"),
			wrong("Platinum"),
		},
	},
	{
		Text:       "Which particle has no electric charge?",
		Category:   "Science",
		Difficulty: domain.DifficultyHard,
		Points:     20,
		Choices: []domain.Choice{
			wrong("Proton"),
			wrong("Electron"),
			right("Neutron"),
			wrong("Ion"),
		},
	},
}
