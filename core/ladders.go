package core

import "github.com/codescout/codescout/schema"

// ratingLadders is the practice sheet, grouped by target rating. Problems
// come from the TLE-Eliminators CP sheet; links point at the judge's
// canonical problem page.
var ratingLadders = []schema.Ladder{
	{
		Rating: 800,
		Problems: []schema.Problem{
			{ID: "CF71A", Name: "Way Too Long Words", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/71/A", Difficulty: 800},
			{ID: "CF231A", Name: "Team", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/231/A", Difficulty: 800},
			{ID: "CF4A", Name: "Watermelon", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/4/A", Difficulty: 800},
			{ID: "CF158A", Name: "Next Round", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/158/A", Difficulty: 800},
			{ID: "CF282A", Name: "Bit++", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/282/A", Difficulty: 800},
			{ID: "CF1328A", Name: "Divisibility Problem", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1328/A", Difficulty: 800},
		},
	},
	{
		Rating: 900,
		Problems: []schema.Problem{
			{ID: "CF1352A", Name: "Sum of Round Numbers", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1352/A", Difficulty: 900},
			{ID: "CF580A", Name: "Kefa and First Steps", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/580/A", Difficulty: 900},
			{ID: "CF1092B", Name: "Teams Forming", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1092/B", Difficulty: 900},
			{ID: "CF492B", Name: "Vanya and Lanterns", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/492/B", Difficulty: 900},
			{ID: "CF318A", Name: "Even Odds", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/318/A", Difficulty: 900},
		},
	},
	{
		Rating: 1000,
		Problems: []schema.Problem{
			{ID: "CF1385B", Name: "Restore the Permutation by Merger", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1385/B", Difficulty: 1000},
			{ID: "CF466A", Name: "Cheap Travel", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/466/A", Difficulty: 1000},
			{ID: "CF1335B", Name: "Construct the String", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1335/B", Difficulty: 1000},
			{ID: "CF467B", Name: "Fedor and New Game", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/467/B", Difficulty: 1000},
			{ID: "CF1360C", Name: "Similar Pairs", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1360/C", Difficulty: 1000},
		},
	},
	{
		Rating: 1100,
		Problems: []schema.Problem{
			{ID: "CF1353C", Name: "Board Moves", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1353/C", Difficulty: 1100},
			{ID: "CF1399C", Name: "Boats Competition", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1399/C", Difficulty: 1100},
			{ID: "CF1005B", Name: "Delete from the Left", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1005/B", Difficulty: 1100},
			{ID: "CF520B", Name: "Two Buttons", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/520/B", Difficulty: 1100},
			{ID: "CF1374C", Name: "Move Brackets", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1374/C", Difficulty: 1100},
		},
	},
	{
		Rating: 1200,
		Problems: []schema.Problem{
			{ID: "CF1352C", Name: "K-th Not Divisible by n", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1352/C", Difficulty: 1200},
			{ID: "CF230B", Name: "T-primes", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/230/B", Difficulty: 1200},
			{ID: "CF479C", Name: "Exams", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/479/C", Difficulty: 1200},
			{ID: "CF1367C", Name: "Social Distance", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1367/C", Difficulty: 1200},
			{ID: "CF550A", Name: "Two Substrings", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/550/A", Difficulty: 1200},
		},
	},
	{
		Rating: 1300,
		Problems: []schema.Problem{
			{ID: "CF1169B", Name: "Pairs", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1169/B", Difficulty: 1300},
			{ID: "CF1326C", Name: "Permutation Partitions", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1326/C", Difficulty: 1300},
			{ID: "CF1118C", Name: "Palindromic Matrix", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1118/C", Difficulty: 1300},
			{ID: "CF676C", Name: "Vasya and String", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/676/C", Difficulty: 1300},
			{ID: "CF1362C", Name: "Johnny and Another Rating Drop", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1362/C", Difficulty: 1300},
		},
	},
	{
		Rating: 1400,
		Problems: []schema.Problem{
			{ID: "CF1365D", Name: "Solve The Maze", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1365/D", Difficulty: 1400},
			{ID: "CF1352D", Name: "Alice, Bob and Candies", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1352/D", Difficulty: 1400},
			{ID: "CF1385D", Name: "a-Good String", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1385/D", Difficulty: 1400},
			{ID: "CF977D", Name: "Divide by three, multiply by two", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/977/D", Difficulty: 1400},
			{ID: "CF1472D", Name: "Even-Odd Game", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1472/D", Difficulty: 1400},
		},
	},
	{
		Rating: 1500,
		Problems: []schema.Problem{
			{ID: "CF1380C", Name: "Create The Teams", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1380/C", Difficulty: 1500},
			{ID: "CF1141D", Name: "Colored Boots", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1141/D", Difficulty: 1500},
			{ID: "CF1203D2", Name: "Remove the Substring (hard version)", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1203/D2", Difficulty: 1500},
			{ID: "CF1327C", Name: "Game with Chips", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/1327/C", Difficulty: 1500},
			{ID: "CF545C", Name: "Woodcutters", Judge: schema.Codeforces, Link: "https://codeforces.com/problemset/problem/545/C", Difficulty: 1500},
		},
	},
}
