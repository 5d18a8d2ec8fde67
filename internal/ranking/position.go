package ranking

// Positions attribue des positions de type "competition ranking" (1,1,3) sur
// une séquence déjà triée par la clé de classement. tied doit dire si les
// lignes i et j partagent la même clé; assign reçoit la position 1-based de
// chaque ligne.
//
// trueCount est l'index 1-based de la ligne courante; posCount la position à
// attribuer. Une suite de lignes à clé égale reçoit la même position, puis le
// compteur saute de la longueur de la suite.
func Positions(count int, tied func(i, j int) bool, assign func(i, pos int)) {
	trueCount, posCount := 1, 1

	for i := 0; i < count; i++ {
		assign(i, posCount)
		trueCount++
		if i+1 < count && !tied(i, i+1) {
			posCount = trueCount
		}
	}
}
