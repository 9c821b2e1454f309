// Command studytrack is a personal study tracker: it schedules topic
// reviews with a spaced-repetition heuristic, keeps homework and streaks,
// and stores everything in a single JSON file.
package main

func main() {
	Execute()
}
