package testutil

// Karate is Zachary's karate club as an adjacency object, a small graph
// with two clear hubs (1 and 34) and a non-trivial core structure.
const Karate = `{
	"1": [2, 3, 4, 5, 6, 7, 8, 9, 11, 12, 13, 14, 18, 20, 22, 32],
	"2": [1, 3, 4, 8, 14, 18, 20, 22, 31],
	"3": [1, 2, 4, 8, 9, 10, 14, 28, 29, 33],
	"4": [1, 2, 3, 8, 13, 14],
	"5": [1, 7, 11],
	"6": [1, 7, 11, 17],
	"7": [1, 5, 6, 17],
	"8": [1, 2, 3, 4],
	"9": [1, 3, 31, 33, 34],
	"10": [3, 34],
	"11": [1, 5, 6],
	"12": [1],
	"13": [1, 4],
	"14": [1, 2, 3, 4, 34],
	"15": [33, 34],
	"16": [33, 34],
	"17": [6, 7],
	"18": [1, 2],
	"19": [33, 34],
	"20": [1, 2, 34],
	"21": [33, 34],
	"22": [1, 2],
	"23": [33, 34],
	"24": [26, 28, 30, 33, 34],
	"25": [26, 28, 32],
	"26": [24, 25, 32],
	"27": [30, 34],
	"28": [3, 24, 25, 34],
	"29": [3, 32, 34],
	"30": [24, 27, 33, 34],
	"31": [2, 9, 33, 34],
	"32": [1, 25, 26, 29, 33, 34],
	"33": [3, 9, 15, 16, 19, 21, 23, 24, 30, 31, 32, 34],
	"34": [9, 10, 14, 15, 16, 19, 20, 21, 23, 24, 27, 28, 29, 30, 31, 32, 33]
}`
