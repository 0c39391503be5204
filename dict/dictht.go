package dict

// dictHt 是固定大小的槽数组，table[i] 为该槽链表头的 entry 下标，0 表示空槽
type dictHt struct {
	table []uint32
	size  int64
	used  int64
}

func (ht *dictHt) init(size int64) (err error) {
	defer func() {
		// make 在长度越界时 panic，这里转换成可识别的错误
		if r := recover(); r != nil {
			err = ErrTableAlloc
		}
	}()
	ht.table = make([]uint32, size)
	ht.size = size
	ht.used = 0
	return nil
}

func (ht *dictHt) reset() {
	ht.table = nil
	ht.size = 0
	ht.used = 0
}

func (ht *dictHt) slot(hash uint64) int64 {
	return int64(hash % uint64(ht.size))
}
