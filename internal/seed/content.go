package seed

import "ai_linguo/internal/model"

// Lessons returns the built-in lessons in seed order.
func Lessons() []*model.Lesson {
	return []*model.Lesson{
		{
			CEFRLevel: model.LevelA1,
			Title:     "Basic Greetings and Introductions",
			ContentMarkdown: `# Basic Greetings and Introductions

## Common Greetings
- Hello / Hi
- Good morning / Good afternoon / Good evening
- How are you?
- Nice to meet you

## Practice
Try introducing yourself using these phrases!`,
			EstimatedMinutes: 10,
		},
		{
			CEFRLevel: model.LevelA1,
			Title:     "Numbers and Time",
			ContentMarkdown: `# Numbers and Time

## Numbers 1-20
One, two, three, four, five...

## Telling Time
- What time is it?
- It's 3 o'clock
- It's half past two`,
			EstimatedMinutes: 15,
		},
		{
			CEFRLevel: model.LevelA2,
			Title:     "Past Simple Tense",
			ContentMarkdown: `# Past Simple Tense

## Regular Verbs
- I walked to school yesterday
- She played soccer last week
- We studied English together

## Irregular Verbs
- I went home early
- He ate breakfast at 8 AM
- They saw a movie last night`,
			EstimatedMinutes: 20,
		},
		{
			CEFRLevel: model.LevelB1,
			Title:     "Present Perfect vs Past Simple",
			ContentMarkdown: `# Present Perfect vs Past Simple

## Present Perfect
- I have lived here for 5 years
- She has already finished her homework
- They have never been to Japan

## Past Simple
- I lived in London last year
- She finished her homework yesterday
- They went to Japan in 2019`,
			EstimatedMinutes: 25,
		},
		{
			CEFRLevel: model.LevelB2,
			Title:     "Conditional Sentences",
			ContentMarkdown: `# Conditional Sentences

## First Conditional
- If it rains tomorrow, I will stay home
- She will call you if she has time

## Second Conditional
- If I were rich, I would travel the world
- What would you do if you won the lottery?`,
			EstimatedMinutes: 30,
		},
		{
			CEFRLevel: model.LevelC1,
			Title:     "Advanced Grammar Structures",
			ContentMarkdown: `# Advanced Grammar Structures

## Subjunctive Mood
- I suggest that he be more careful
- It's important that she arrive on time

## Passive Voice Variations
- The proposal is being considered by the committee
- Having been warned about the danger, we proceeded carefully`,
			EstimatedMinutes: 35,
		},
	}
}

// Cards returns the built-in vocabulary in seed order.
func Cards() []*model.VocabCard {
	return []*model.VocabCard{
		{Term: "apple", Meaning: "maçã", Example: "I eat an apple every day", CEFRLevel: model.LevelA1},
		{Term: "house", Meaning: "casa", Example: "My house is very big", CEFRLevel: model.LevelA1},
		{Term: "water", Meaning: "água", Example: "I drink water when I am thirsty", CEFRLevel: model.LevelA1},
		{Term: "book", Meaning: "livro", Example: "I read a book every night", CEFRLevel: model.LevelA1},
		{Term: "friend", Meaning: "amigo", Example: "My best friend lives next door", CEFRLevel: model.LevelA1},

		{Term: "beautiful", Meaning: "bonito/bonita", Example: "The sunset is beautiful", CEFRLevel: model.LevelA2},
		{Term: "important", Meaning: "importante", Example: "Education is very important", CEFRLevel: model.LevelA2},
		{Term: "different", Meaning: "diferente", Example: "Every person is different", CEFRLevel: model.LevelA2},
		{Term: "interesting", Meaning: "interessante", Example: "The movie was very interesting", CEFRLevel: model.LevelA2},
		{Term: "difficult", Meaning: "difícil", Example: "Math is difficult for me", CEFRLevel: model.LevelA2},

		{Term: "necessary", Meaning: "necessário", Example: "It is necessary to study English", CEFRLevel: model.LevelB1},
		{Term: "although", Meaning: "embora", Example: "Although it was raining, we went out", CEFRLevel: model.LevelB1},
		{Term: "according", Meaning: "de acordo com", Example: "According to the news, it will rain tomorrow", CEFRLevel: model.LevelB1},
		{Term: "particularly", Meaning: "particularmente", Example: "I particularly enjoy reading books", CEFRLevel: model.LevelB1},
		{Term: "knowledge", Meaning: "conhecimento", Example: "Knowledge is power", CEFRLevel: model.LevelB1},

		{Term: "significant", Meaning: "significativo", Example: "There was a significant improvement in sales", CEFRLevel: model.LevelB2},
		{Term: "consequence", Meaning: "consequência", Example: "Every action has a consequence", CEFRLevel: model.LevelB2},
		{Term: "comprehensive", Meaning: "abrangente", Example: "We need a comprehensive solution", CEFRLevel: model.LevelB2},
		{Term: "nevertheless", Meaning: "no entanto", Example: "The task was difficult; nevertheless, we completed it", CEFRLevel: model.LevelB2},
		{Term: "controversy", Meaning: "controvérsia", Example: "The decision caused much controversy", CEFRLevel: model.LevelB2},

		{Term: "sophisticated", Meaning: "sofisticado", Example: "She has sophisticated taste in art", CEFRLevel: model.LevelC1},
		{Term: "phenomenon", Meaning: "fenômeno", Example: "Climate change is a global phenomenon", CEFRLevel: model.LevelC1},
		{Term: "elaborate", Meaning: "elaborar/detalhado", Example: "Could you elaborate on your proposal?", CEFRLevel: model.LevelC1},
		{Term: "unprecedented", Meaning: "sem precedentes", Example: "The pandemic created unprecedented challenges", CEFRLevel: model.LevelC1},
		{Term: "substantial", Meaning: "substancial", Example: "There was substantial progress in the negotiations", CEFRLevel: model.LevelC1},
	}
}
