package model

import "reflect"

var (
	sizeScalar    = int(reflect.TypeOf(Scalar{}).Size())
	sizeExtension = int(reflect.TypeOf(Extension{}).Size())
	sizeChoice    = int(reflect.TypeOf(Choice{}).Size())
	sizeElement   = int(reflect.TypeOf(Element{}).Size())
	sizeResource  = int(reflect.TypeOf(Resource{}).Size())
	sizePointer   = int(reflect.TypeOf(&Scalar{}).Size())
	sizeString    = int(reflect.TypeOf("").Size())
	sizeValue     = int(reflect.TypeOf((*Value)(nil)).Elem().Size())
	sizeRetained  = int(reflect.TypeOf(RetainedField{}).Size())
	// sizeMapEntry approximates one bucket slot of the element field map.
	sizeMapEntry = sizeString + sizeValue
)

func (s *Scalar) MemSize() int {
	if s == nil {
		return 0
	}
	n := sizeScalar + len(s.Type)
	if s.ID != nil {
		n += sizeString + len(*s.ID)
	}
	n += sizeExtensions(s.Extension)
	switch v := s.Value.(type) {
	case String:
		n += sizeString + len(v)
	case Lexical:
		n += sizeString + len(v)
	case Boolean:
		n += int(reflect.TypeOf(v).Size())
	case Number:
		n += int(reflect.TypeOf(v).Size())
		if v.Decimal != nil {
			n += int(v.Decimal.Size())
		}
	}
	return n
}

func (e *Extension) MemSize() int {
	if e == nil {
		return 0
	}
	n := sizeExtension + len(e.URL)
	if e.ID != nil {
		n += sizeString + len(*e.ID)
	}
	n += sizeExtensions(e.Extension)
	n += e.Value.MemSize()
	n += sizeRetainedFields(e.retained)
	return n
}

func (c *Choice) MemSize() int {
	if c == nil {
		return 0
	}
	n := sizeChoice + len(c.Type)
	if c.Value != nil {
		n += c.Value.MemSize()
	}
	return n
}

func (e *Element) MemSize() int {
	if e == nil {
		return 0
	}
	n := sizeElement + len(e.values)*sizeMapEntry
	for _, v := range e.values {
		n += v.MemSize()
	}
	n += sizeRetainedFields(e.retained)
	return n
}

func (r *Resource) MemSize() int {
	if r == nil {
		return 0
	}
	return sizeResource + r.body.MemSize()
}

func (l List) MemSize() int {
	// unused capacity is counted as well
	n := cap(l) * sizeValue
	for _, v := range l {
		if v != nil {
			n += v.MemSize()
		}
	}
	return n
}

func sizeExtensions(exts []*Extension) int {
	n := cap(exts) * sizePointer
	for _, e := range exts {
		n += e.MemSize()
	}
	return n
}

func sizeRetainedFields(fields []RetainedField) int {
	n := cap(fields) * sizeRetained
	for _, f := range fields {
		n += len(f.Key) + cap(f.Raw)
	}
	return n
}
