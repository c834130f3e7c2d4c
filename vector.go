package mlkem

// This file lifts Components A-D to rank-k vectors and k*k matrices
// (spec §4.E). A vector is a []scalar of length k; a matrix is a
// []scalar of length k*k in row-major order, always held in NTT domain
// and always the transpose of FIPS 203's A (spec §4.F).

// vectorAdd returns the coefficient-wise sum of two vectors. The result
// does not alias either input.
func vectorAdd(a, b []scalar) []scalar {
	out := make([]scalar, len(a))
	for i := range out {
		out[i] = add(a[i], b[i])
	}
	return out
}

// vectorNTT returns the NTT of every scalar in v. The result does not
// alias v.
func vectorNTT(v []scalar) []scalar {
	out := make([]scalar, len(v))
	for i := range v {
		out[i] = ntt(v[i])
	}
	return out
}

// vectorInverseNTT returns the inverse NTT of every scalar in v. The
// result does not alias v.
func vectorInverseNTT(v []scalar) []scalar {
	out := make([]scalar, len(v))
	for i := range v {
		out[i] = inverseNTT(v[i])
	}
	return out
}

// vectorEncode12 encodes every element of v with byteEncode12,
// concatenated in order.
func vectorEncode12(v []scalar) []byte {
	out := make([]byte, 0, encodingSize12*len(v))
	for i := range v {
		out = append(out, byteEncode12(&v[i])...)
	}
	return out
}

// vectorDecode12 decodes len(v) consecutive 384-byte 12-bit encodings
// from b, validating each field is < q.
func vectorDecode12(b []byte, k int) ([]scalar, error) {
	v := make([]scalar, k)
	for i := 0; i < k; i++ {
		f, err := byteDecode12(b[i*encodingSize12 : (i+1)*encodingSize12])
		if err != nil {
			return nil, err
		}
		v[i] = *f
	}
	return v, nil
}

// innerProductNTT computes the dot product of two NTT-domain vectors,
// accumulating with multiplyAddNTT.
func innerProductNTT(a, b []scalar) scalar {
	var acc scalar
	for i := range a {
		acc = multiplyAddNTT(acc, a[i], b[i])
	}
	return acc
}

// matrixMulNTT computes, for an NTT-domain matrix m stored row-major
// (rank k) and NTT-domain vector v, out[i] = sum_j m[i*k+j] * v[j]. Used
// where spec §4.F's stored matrix is read in its natural (non-transpose)
// orientation, i.e. wherever FIPS 203 calls for A^T (since m stores A^T
// already): K-PKE encryption's u = A^T * y.
func matrixMulNTT(m, v []scalar, k int) []scalar {
	out := make([]scalar, k)
	for i := 0; i < k; i++ {
		out[i] = innerProductNTT(m[i*k:i*k+k], v)
	}
	return out
}

// matrixMulTransposeNTT computes out[i] = sum_j m[j*k+i] * v[j]: the
// same stored matrix read column-major, giving the product by A itself
// (since m = A^T, reading it transposed yields A). Used for K-PKE
// key generation's t = A * s + e.
func matrixMulTransposeNTT(m, v []scalar, k int) []scalar {
	out := make([]scalar, k)
	for i := 0; i < k; i++ {
		var acc scalar
		for j := 0; j < k; j++ {
			acc = multiplyAddNTT(acc, m[j*k+i], v[j])
		}
		out[i] = acc
	}
	return out
}

// vectorCompress compresses every coefficient of every element of v to
// d bits.
func vectorCompress(v []scalar, d int) []scalar {
	out := make([]scalar, len(v))
	for i := range v {
		for j := range v[i] {
			out[i][j] = fieldElement(compress(v[i][j], d))
		}
	}
	return out
}

// vectorDecompress decompresses every coefficient of every element of v
// from d bits.
func vectorDecompress(v []scalar, d int) []scalar {
	out := make([]scalar, len(v))
	for i := range v {
		for j := range v[i] {
			out[i][j] = decompress(uint16(v[i][j]), d)
		}
	}
	return out
}

// vectorEncodeD packs every element of v with a d-bit byteEncode,
// concatenated in order.
func vectorEncodeD(v []scalar, d int) []byte {
	out := make([]byte, 0, encodingSizeD(d)*len(v))
	for i := range v {
		out = append(out, byteEncode(d, &v[i])...)
	}
	return out
}

// vectorDecodeD unpacks k consecutive d-bit encodings from b.
func vectorDecodeD(b []byte, d, k int) []scalar {
	v := make([]scalar, k)
	size := encodingSizeD(d)
	for i := 0; i < k; i++ {
		v[i] = *byteDecode(d, b[i*size:(i+1)*size])
	}
	return v
}
