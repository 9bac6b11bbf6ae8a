package vergesort

// direction 런의 방향
type direction uint8

const (
	// descending 감소하거나 같은 원소가 이어지는 런. 병합 전에 뒤집는다.
	descending direction = iota
	// ascending 감소하지 않는 런
	ascending
)

func (d direction) String() string {
	if d == ascending {
		return "ascending"
	}
	return "descending"
}

// scanRun begin 에서 시작하는 최대 단조 런의 끝(배타적)을 돌려준다.
// 감소 런은 처음으로 증가하는 지점에서, 증가 런은 처음으로 감소하는 지점에서 끊긴다.
func scanRun(seq sequence, begin, last int, dir direction) int {
	end := begin + 1
	if dir == descending {
		for end < last && !seq.Less(end-1, end) {
			end++
		}
		return end
	}
	for end < last && !seq.Less(end, end-1) {
		end++
	}
	return end
}

// sortedUntil [first, last) 에서 정렬이 처음 깨지는 위치. 끝까지 정렬돼 있으면 last.
func sortedUntil(seq sequence, first, last int) int {
	if first == last {
		return last
	}
	for next := first + 1; next < last; next++ {
		if seq.Less(next, next-1) {
			return next
		}
	}
	return last
}
