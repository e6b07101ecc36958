// Package sort 는 정수 슬라이스용 정렬 알고리즘을 제공한다.
//
// QuickSort 는 중앙 인덱스 피벗과 Hoare 방식 파티셔닝(양쪽에서 좁혀오는 두 포인터)을
// 사용하는 퀵소트이고, MergeSort 는 임시 버퍼로 병합하는 하향식 재귀 머지소트이다.
// QuickSortStack 은 같은 파티셔닝을 명시적 스택으로 돌려 호출 깊이를 제한한다.
//
// 모든 함수는 슬라이스를 제자리에서 정렬한다. *Range 변형은 포함 구간 [low, high] 만
// 정렬하며, 비어 있지 않은 구간이 슬라이스 밖을 가리키면 ErrInvalidRange 를 반환한다.
//
// MergeSort 는 안정 정렬이고 QuickSort 는 그렇지 않다.
package sort
