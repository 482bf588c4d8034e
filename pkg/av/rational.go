package av

/*
#cgo pkg-config: libavutil
#include <libavutil/rational.h>
#include <libavutil/mathematics.h>
*/
import "C"

// Rational mirrors AVRational. The zero value is an unset time base.
type Rational struct {
	Num, Den int
}

func NewRational(num, den int) Rational {
	return Rational{Num: num, Den: den}
}

func (r Rational) IsZero() bool {
	return r.Num == 0 && r.Den == 0
}

func (r Rational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) ctype() C.AVRational {
	return C.av_make_q(C.int(r.Num), C.int(r.Den))
}

func rational(q C.AVRational) Rational {
	return Rational{Num: int(q.num), Den: int(q.den)}
}

// Rescale converts a timestamp from this time base to dst, rounding to the
// nearest value like av_rescale_q.
func (r Rational) Rescale(ts int64, dst Rational) int64 {
	return int64(C.av_rescale_q(C.int64_t(ts), r.ctype(), dst.ctype()))
}
