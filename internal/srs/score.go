package srs

// Score combines a difficulty and confidence rating into a review score in
// [1,5]. Low difficulty and high confidence both raise the score:
//
//	score = ((6-difficulty) + confidence) / 2
//
// The topic's level grows by score/5 per review, so any valid rating pair
// produces strictly positive growth.
func Score(difficulty, confidence int) float64 {
	return (float64(6-difficulty) + float64(confidence)) / 2
}
