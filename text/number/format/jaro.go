package format

// jaroSimilarity computes the classic Jaro string similarity of a and b, in
// [0, 1], used by resolve_currency's fuzzy matching (spec §4.9) when a
// lenient equality check fails to find a currency display string. This is
// Jaro, not Jaro-Winkler: no extra weight is given to a shared prefix, since
// currency names and symbols don't reliably share one.
func jaroSimilarity(a, b string) float64 {
    ar, br := []rune(a), []rune(b)
    la, lb := len(ar), len(br)
    if la == 0 && lb == 0 {
        return 1
    }
    if la == 0 || lb == 0 {
        return 0
    }

    matchDistance := la
    if lb > matchDistance {
        matchDistance = lb
    }
    matchDistance = matchDistance/2 - 1
    if matchDistance < 0 {
        matchDistance = 0
    }

    aMatched := make([]bool, la)
    bMatched := make([]bool, lb)

    matches := 0
    for i := 0; i < la; i++ {
        start := i - matchDistance
        if start < 0 {
            start = 0
        }
        end := i + matchDistance + 1
        if end > lb {
            end = lb
        }
        for j := start; j < end; j++ {
            if bMatched[j] || ar[i] != br[j] {
                continue
            }
            aMatched[i] = true
            bMatched[j] = true
            matches++
            break
        }
    }
    if matches == 0 {
        return 0
    }

    transpositions := 0
    k := 0
    for i := 0; i < la; i++ {
        if !aMatched[i] {
            continue
        }
        for !bMatched[k] {
            k++
        }
        if ar[i] != br[k] {
            transpositions++
        }
        k++
    }
    transpositions /= 2

    // One division over a common denominator, so that a similarity of
    // exactly 4/5 compares equal to 0.8.
    m, t := float64(matches), float64(transpositions)
    fa, fb := float64(la), float64(lb)
    return (m*fb*m + m*fa*m + (m-t)*fa*fb) / (3 * fa * fb * m)
}
