package conlog

var (
	p func(string, ...interface{})
	d func(string, ...interface{})
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}
func SetDebugPrintf(f func(string, ...interface{})) {
	d = f
}

func Printf(format string, v ...interface{}) {
	if p != nil {
		p(format, v...)
	}
}

// DPrintf is silent unless a debug sink was set.
func DPrintf(format string, v ...interface{}) {
	if d != nil {
		d(format, v...)
	}
}
