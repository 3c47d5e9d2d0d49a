package calendar

import (
	"errors"
	"testing"
)

func TestDecodeLunarYear_OutOfRange(t *testing.T) {
	for _, y := range []int{1799, 2100, 0, -50} {
		if _, _, err := DecodeLunarYear(y); !errors.Is(err, ErrYearOutOfRange) {
			t.Fatalf("DecodeLunarYear(%d) err = %v, want ErrYearOutOfRange", y, err)
		}
	}
	for _, y := range []int{1800, 2099} {
		if _, _, err := DecodeLunarYear(y); err != nil {
			t.Fatalf("DecodeLunarYear(%d) err = %v, want nil", y, err)
		}
	}
}

func TestDecodeLunarYear_2024(t *testing.T) {
	tet, months, err := DecodeLunarYear(2024)
	if err != nil {
		t.Fatalf("decode 2024: %v", err)
	}
	if want := JDFromDate(10, 2, 2024); tet != want {
		t.Fatalf("Tết 2024 jd = %d (%v), want %d", tet, SolarDateFromJD(tet), want)
	}
	if len(months) != 12 {
		t.Fatalf("2024 has %d months, want 12", len(months))
	}
	if m := months[0]; m.Month != 1 || m.Leap || m.Days != 29 || m.Start != tet {
		t.Fatalf("month 1 = %+v", m)
	}
}

func TestDecodeLunarYear_2023LeapMonth(t *testing.T) {
	tet, months, err := DecodeLunarYear(2023)
	if err != nil {
		t.Fatalf("decode 2023: %v", err)
	}
	if want := JDFromDate(22, 1, 2023); tet != want {
		t.Fatalf("Tết 2023 jd = %d, want %d", tet, want)
	}
	if len(months) != 13 {
		t.Fatalf("2023 has %d months, want 13", len(months))
	}

	var leaps []int
	for i, m := range months {
		if m.Leap {
			leaps = append(leaps, i)
		}
	}
	if len(leaps) != 1 {
		t.Fatalf("2023 leap entries = %v, want exactly one", leaps)
	}
	li := leaps[0]
	leap := months[li]
	if leap.Month != 2 || leap.Days != 29 {
		t.Fatalf("2023 leap month = %+v, want month 2, 29 days", leap)
	}
	if prev := months[li-1]; prev.Month != 2 || prev.Leap {
		t.Fatalf("leap month does not follow its ordinary twin: %+v", prev)
	}
	if want := JDFromDate(22, 3, 2023); leap.Start != want {
		t.Fatalf("leap month starts jd=%d (%v), want %d", leap.Start, SolarDateFromJD(leap.Start), want)
	}
}

func TestDecodeLunarYear_SpansAreConsecutive(t *testing.T) {
	for y := 1800; y <= 2099; y++ {
		tet, months, err := DecodeLunarYear(y)
		if err != nil {
			t.Fatalf("decode %d: %v", y, err)
		}
		if n := len(months); n != 12 && n != 13 {
			t.Fatalf("year %d has %d months", y, n)
		}

		cur := tet
		total := 0
		leaps := 0
		for _, m := range months {
			if m.Start != cur {
				t.Fatalf("year %d month %+v starts at %d, want %d", y, m, m.Start, cur)
			}
			if m.Days != 29 && m.Days != 30 {
				t.Fatalf("year %d month %+v has bad length", y, m)
			}
			if m.Leap {
				leaps++
			}
			cur += m.Days
			total += m.Days
		}
		if len(months) == 13 && leaps != 1 {
			t.Fatalf("year %d: 13 months but %d leap entries", y, leaps)
		}
		if len(months) == 12 && leaps != 0 {
			t.Fatalf("year %d: 12 months but leap entry present", y)
		}
		switch total {
		case 353, 354, 355, 383, 384, 385:
		default:
			t.Fatalf("year %d totals %d days", y, total)
		}

		// The next Tết must start right where this year ends.
		if y < 2099 {
			nextTet, _, err := DecodeLunarYear(y + 1)
			if err != nil {
				t.Fatalf("decode %d: %v", y+1, err)
			}
			if nextTet != cur {
				t.Fatalf("year %d ends at jd=%d but Tết %d is jd=%d", y, cur, y+1, nextTet)
			}
		}
	}
}
