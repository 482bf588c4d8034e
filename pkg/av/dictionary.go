package av

/*
#cgo pkg-config: libavutil
#include <stdlib.h>
#include <libavutil/dict.h>
*/
import "C"
import "unsafe"

// Dictionary wraps an AVDictionary. Native calls that consume a dictionary
// (avformat_open_input, avcodec_open2, ...) take ownership of the entries they
// understand; Close is still required to release the remainder.
type Dictionary struct {
	dict *C.AVDictionary
}

func NewDictionary(entries map[string]string) (*Dictionary, error) {
	d := &Dictionary{}
	for key, value := range entries {
		if err := d.Set(key, value); err != nil {
			d.Close()
			return nil, err
		}
	}
	return d, nil
}

func (d *Dictionary) Set(key, value string) error {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))

	if averr := C.av_dict_set(&d.dict, ckey, cvalue, 0); averr < 0 {
		return av_err("av_dict_set", averr)
	}
	return nil
}

func (d *Dictionary) SetInt(key string, value int64) error {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	if averr := C.av_dict_set_int(&d.dict, ckey, C.int64_t(value), 0); averr < 0 {
		return av_err("av_dict_set_int", averr)
	}
	return nil
}

func (d *Dictionary) Get(key string) (string, bool) {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	entry := C.av_dict_get(d.dict, ckey, nil, 0)
	if entry == nil {
		return "", false
	}
	return C.GoString(entry.value), true
}

func (d *Dictionary) Len() int {
	return int(C.av_dict_count(d.dict))
}

func (d *Dictionary) Close() error {
	C.av_dict_free(&d.dict)
	return nil
}
