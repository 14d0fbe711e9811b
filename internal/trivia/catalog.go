package trivia

import "strings"

const DefaultLocale = "en"

var catalogs = map[string][]Question{
	"en": {
		{Question: "What is the capital of France?", Answer: "Paris", Category: "Geography", Difficulty: DifficultyEasy},
		{Question: `Who wrote "To Kill a Mockingbird"?`, Answer: "Harper Lee", Category: "Literature", Difficulty: DifficultyEasy},
		{Question: "What is the chemical symbol for water?", Answer: "H2O", Category: "Science", Difficulty: DifficultyEasy},
		{Question: "Which planet is known as the Red Planet?", Answer: "Mars", Category: "Science", Difficulty: DifficultyEasy},
		{Question: "What is the largest mammal in the world?", Answer: "Blue Whale", Category: "Animals", Difficulty: DifficultyEasy},
		{Question: "In what year did the Titanic sink?", Answer: "1912", Category: "History", Difficulty: DifficultyMedium},
		{Question: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci", Category: "Art", Difficulty: DifficultyMedium},
		{Question: "What is the powerhouse of the cell?", Answer: "Mitochondria", Category: "Science", Difficulty: DifficultyMedium},
		{Question: "Which country is both in Europe and Asia?", Answer: "Turkey", Category: "Geography", Difficulty: DifficultyMedium},
		{Question: "Who was the first person to step on the moon?", Answer: "Neil Armstrong", Category: "History", Difficulty: DifficultyMedium},
		{Question: "What is the capital of Australia?", Answer: "Canberra", Category: "Geography", Difficulty: DifficultyHard},
		{Question: `Who is the author of the "A Song of Ice and Fire" series?`, Answer: "George R. R. Martin", Category: "Literature", Difficulty: DifficultyHard},
		{Question: "What is the most spoken language in the world?", Answer: "Mandarin Chinese", Category: "General Knowledge", Difficulty: DifficultyHard},
		{Question: "Which element has the atomic number 1?", Answer: "Hydrogen", Category: "Science", Difficulty: DifficultyHard},
		{Question: "What is the smallest country in the world?", Answer: "Vatican City", Category: "Geography", Difficulty: DifficultyHard},
		{Question: "What is the currency of Japan?", Answer: "Yen", Category: "General Knowledge", Difficulty: DifficultyEasy},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: "Science", Difficulty: DifficultyMedium},
		{Question: "Which is the longest river in the world?", Answer: "Nile", Category: "Geography", Difficulty: DifficultyMedium},
		{Question: "Who invented the light bulb?", Answer: "Thomas Edison", Category: "History", Difficulty: DifficultyEasy},
		{Question: "What is the main ingredient in guacamole?", Answer: "Avocado", Category: "Food", Difficulty: DifficultyEasy},
	},
	"es": {
		{Question: "¿Cuál es la capital de Francia?", Answer: "París", Category: "Geografía", Difficulty: DifficultyEasy},
		{Question: "¿Quién escribió «Matar a un ruiseñor»?", Answer: "Harper Lee", Category: "Literatura", Difficulty: DifficultyEasy},
		{Question: "¿Cuál es el símbolo químico del agua?", Answer: "H2O", Category: "Ciencia", Difficulty: DifficultyEasy},
		{Question: "¿Qué planeta es conocido como el planeta rojo?", Answer: "Marte", Category: "Ciencia", Difficulty: DifficultyEasy},
		{Question: "¿Cuál es el mamífero más grande del mundo?", Answer: "Ballena azul", Category: "Animales", Difficulty: DifficultyEasy},
		{Question: "¿En qué año se hundió el Titanic?", Answer: "1912", Category: "Historia", Difficulty: DifficultyMedium},
		{Question: "¿Quién pintó la Mona Lisa?", Answer: "Leonardo da Vinci", Category: "Arte", Difficulty: DifficultyMedium},
		{Question: "¿Cuál es la central energética de la célula?", Answer: "Mitocondria", Category: "Ciencia", Difficulty: DifficultyMedium},
		{Question: "¿Qué país está tanto en Europa como en Asia?", Answer: "Turquía", Category: "Geografía", Difficulty: DifficultyMedium},
		{Question: "¿Quién fue la primera persona en pisar la Luna?", Answer: "Neil Armstrong", Category: "Historia", Difficulty: DifficultyMedium},
		{Question: "¿Cuál es la capital de Australia?", Answer: "Canberra", Category: "Geografía", Difficulty: DifficultyHard},
		{Question: "¿Quién es el autor de la saga «Canción de hielo y fuego»?", Answer: "George R. R. Martin", Category: "Literatura", Difficulty: DifficultyHard},
		{Question: "¿Cuál es el idioma más hablado del mundo?", Answer: "Chino mandarín", Category: "Cultura general", Difficulty: DifficultyHard},
		{Question: "¿Qué elemento tiene el número atómico 1?", Answer: "Hidrógeno", Category: "Ciencia", Difficulty: DifficultyHard},
		{Question: "¿Cuál es el país más pequeño del mundo?", Answer: "Ciudad del Vaticano", Category: "Geografía", Difficulty: DifficultyHard},
		{Question: "¿Cuál es la moneda de Japón?", Answer: "Yen", Category: "Cultura general", Difficulty: DifficultyEasy},
		{Question: "¿Quién descubrió la penicilina?", Answer: "Alexander Fleming", Category: "Ciencia", Difficulty: DifficultyMedium},
		{Question: "¿Cuál es el río más largo del mundo?", Answer: "Nilo", Category: "Geografía", Difficulty: DifficultyMedium},
		{Question: "¿Quién inventó la bombilla?", Answer: "Thomas Edison", Category: "Historia", Difficulty: DifficultyEasy},
		{Question: "¿Cuál es el ingrediente principal del guacamole?", Answer: "Aguacate", Category: "Comida", Difficulty: DifficultyEasy},
	},
}

// Catalog returns a copy of the built-in questions for a locale, falling back
// to English.
func Catalog(locale string) []Question {
	questions, ok := catalogs[strings.ToLower(strings.TrimSpace(locale))]
	if !ok {
		questions = catalogs[DefaultLocale]
	}
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

func Locales() []string {
	return []string{"en", "es"}
}
