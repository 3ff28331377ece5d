package gostecc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func decInt(t testing.TB, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad decimal literal %q", s)
	return v
}

func hexInt(t testing.TB, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "bad hex literal %q", s)
	return v
}

// gost512 is worked example 2 of GOST R 34.10-2012: a 512-bit prime field
// with a = 7, together with the example's key, nonce and digest.
type gost512 struct {
	params *DomainParams
	d, k   *big.Int
	e      *big.Int
	q      Point
	r, s   *big.Int
}

func gost512Example(t testing.TB) gost512 {
	t.Helper()

	p := decInt(t, "3623986102229003635907788753683874306021320925534678605086546150450856166624002482588482022271496854025090823603058735163734263822371964987228582907372403")
	b := decInt(t, "1518655069210828534508950034714043154928747527740206436194018823352809982443793732829756914785974674866041605397883677596626326413990136959047435811826396")
	n := decInt(t, "3623986102229003635907788753683874306021320925534678605086546150450856166623969164898305032863068499961404079437936585455865192212970734808812618120619743")
	gx := decInt(t, "1928356944067022849399309401243137598997786635459507974357075491307766592685835441065557681003184874819658004903212332884252335830250729527632383493573274")

	// The example's y-coordinate is even.
	packed := make([]byte, 1+(p.BitLen()+7)/8)
	packed[0] = 0x02
	gx.FillBytes(packed[1:])

	params, err := NewDomainParams("gost-512-example", p, big.NewInt(7), b, n, packed)
	require.NoError(t, err)

	return gost512{
		params: params,
		d:      decInt(t, "610081804136373098219538153239847583006845519069531562982388135354890606301782255383608393423372379057665527595116827307025046458837440766121180466875860"),
		k:      decInt(t, "175516356025850499540628279921125280333451031747737791650208144243182057075034446102986750962508909227235866126872473516807810541747529710309879958632945"),
		e:      decInt(t, "2897963881682868575562827278553865049173745197871825199562947419041388950970536661109553499954248733088719748844538964641281654463513296973827706272045964"),
		q: Point{
			X: decInt(t, "909546853002536596556690768669830310006929272546556281596372965370312498563182320436892870052842808608262832456858223580713780290717986855863433431150561"),
			Y: decInt(t, "2921457203374425620632449734248415455640700823559488705164895837509539134297327397380287741428246088626609329139441895016863758984106326600572476822372076"),
		},
		r: decInt(t, "2489204477031349265072864643032147753667451319282131444027498637357611092810221795101871412928823716805959828708330284243653453085322004442442534151761462"),
		s: decInt(t, "864523221707669519038849297382936917075023735848431579919598799313385180564748877195639672460179421760770893278030956807690115822709903853682831835159370"),
	}
}

// failingReader returns err from every Read.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
