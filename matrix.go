package mlkem

// expandMatrix derives the k*k public matrix from the 32-byte seed rho,
// per spec §4.F. Cell (i, j) is sampled from XOF(rho, i, j) — FIPS 203
// samples its A[i][j] from rho || j || i, so the indices are swapped —
// and the stored matrix m is the transpose of A: m[i*k+j] = A[j][i]. matrixMulNTT and
// matrixMulTransposeNTT (vector.go) both read this one stored matrix,
// one plain and one transposed, to obtain A^T*y and A*s respectively
// without expanding A twice.
func expandMatrix(o Oracles, rho *[32]byte, k int) ([]scalar, error) {
	m := make([]scalar, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			f, err := sampleNTT(o.XOF(rho, byte(i), byte(j)))
			if err != nil {
				return nil, err
			}
			m[i*k+j] = f
		}
	}
	return m, nil
}
