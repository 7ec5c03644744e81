package importer

import "cardbot/internal/domain"

// Starter is the vocabulary every fresh database begins with
var Starter = []domain.WordPair{
	{Word: "red", Translation: "красный"},
	{Word: "blue", Translation: "синий"},
	{Word: "green", Translation: "зеленый"},
	{Word: "white", Translation: "белый"},
	{Word: "black", Translation: "черный"},
	{Word: "i", Translation: "я"},
	{Word: "you", Translation: "ты"},
	{Word: "he", Translation: "он"},
	{Word: "she", Translation: "она"},
	{Word: "we", Translation: "мы"},
	{Word: "they", Translation: "они"},
	{Word: "house", Translation: "дом"},
	{Word: "dog", Translation: "собака"},
	{Word: "water", Translation: "вода"},
	{Word: "friend", Translation: "друг"},
}
